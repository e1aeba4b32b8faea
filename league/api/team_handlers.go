// league/api/team_handlers.go
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/openfooty/league-api/league/service"
	"github.com/openfooty/league-api/shared/api"
)

// CreateTeamHandler creates a new team.
// POST /api/v1/teams
func (h *Handlers) CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		api.WriteBadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	team, err := h.teams.CreateTeam(ctx, service.CreateTeamInput{
		Name:      req.Name,
		Manager:   req.Manager,
		Stadium:   req.Stadium,
		Color:     req.Color,
		Nickname:  req.Nickname,
		CreatedBy: accountRef(r),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusCreated, "team created successfully", map[string]interface{}{"team": team})
}

// GetTeamHandler returns a single team by public id, via the read-through
// cache. Serves both the public and the admin-scoped route.
// GET /api/v1/teams/{id}, GET /api/v1/admin/teams/{id}
func (h *Handlers) GetTeamHandler(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	team, err := h.teams.GetTeam(ctx, teamID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "team found", map[string]interface{}{"team": team})
}

// ListTeamsHandler returns all teams. Fresh listings are paginated; cached
// listings are returned as stored.
// GET /api/v1/teams
func (h *Handlers) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	teams, cached, err := h.teams.ListTeams(ctx)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if cached {
		api.WriteSuccess(w, http.StatusOK, "teams found", teams)
		return
	}

	page, limit := pageQuery(r)
	api.WriteSuccess(w, http.StatusOK, "teams found", service.Paginate(teams, page, limit))
}

// UpdateTeamHandler applies a partial team update.
// PUT /api/v1/teams/{id}
func (h *Handlers) UpdateTeamHandler(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["id"]

	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		api.WriteBadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	team, err := h.teams.UpdateTeam(ctx, teamID, service.UpdateTeamInput{
		Name:     req.Name,
		Manager:  req.Manager,
		Stadium:  req.Stadium,
		Color:    req.Color,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "team updated successfully", map[string]interface{}{"team": team})
}

// DeleteTeamHandler removes a team.
// DELETE /api/v1/teams/{id}
func (h *Handlers) DeleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.teams.DeleteTeam(ctx, teamID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "team deleted successfully", nil)
}

// SearchHandler runs a free-text search across teams and fixtures.
// GET /api/v1/search?search=term
func (h *Handlers) SearchHandler(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	results, cached, err := h.teams.Search(ctx, term)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if cached {
		api.WriteSuccess(w, http.StatusOK, "search results returned", results)
		return
	}

	page, limit := pageQuery(r)
	api.WriteSuccess(w, http.StatusOK, "search results returned", map[string]interface{}{
		"teams":    service.Paginate(results.Teams, page, limit),
		"fixtures": service.Paginate(results.Fixtures, page, limit),
	})
}
