// league/api/fixture_handlers.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/openfooty/league-api/league/service"
	"github.com/openfooty/league-api/shared/api"
	"github.com/openfooty/league-api/shared/models"
)

// CreateFixtureHandler schedules a new fixture.
// POST /api/v1/fixtures
func (h *Handlers) CreateFixtureHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateFixtureRequest
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

	fixture, err := h.fixtures.CreateFixture(ctx, service.CreateFixtureInput{
		HomeID:    req.Home,
		AwayID:    req.Away,
		KickOff:   req.KickOff,
		CreatedBy: accountRef(r),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusCreated, "fixture created successfully", map[string]interface{}{"fixture": fixture})
}

// GetFixtureHandler returns a single fixture by public id, via the
// read-through cache. Serves both the public and the admin-scoped route.
// GET /api/v1/fixtures/{id}, GET /api/v1/admin/fixtures/{id}
func (h *Handlers) GetFixtureHandler(w http.ResponseWriter, r *http.Request) {
	fixtureID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	fixture, err := h.fixtures.GetFixture(ctx, fixtureID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "fixture found", map[string]interface{}{"fixture": fixture})
}

// ListFixturesHandler returns fixtures filtered by status and kickoff date
// range. Fresh listings are paginated; cached listings are returned as
// stored.
// GET /api/v1/fixtures?status=&startDate=&endDate=&page=&limit=
func (h *Handlers) ListFixturesHandler(w http.ResponseWriter, r *http.Request) {
	query := service.FixtureQuery{}

	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidStatus(status) {
			api.WriteBadRequest(w, "invalid fixture status")
			return
		}
		query.Statuses = []string{status}
	}

	var err error
	if query.From, err = dateQuery(r, "startDate"); err != nil {
		api.WriteBadRequest(w, "invalid startDate")
		return
	}
	if query.To, err = dateQuery(r, "endDate"); err != nil {
		api.WriteBadRequest(w, "invalid endDate")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	fixtures, cached, err := h.fixtures.ListFixtures(ctx, query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if cached {
		api.WriteSuccess(w, http.StatusOK, "fixtures found", fixtures)
		return
	}

	page, limit := pageQuery(r)
	api.WriteSuccess(w, http.StatusOK, "fixtures found", service.Paginate(fixtures, page, limit))
}

// UpdateFixtureHandler applies a partial fixture update.
// PUT /api/v1/fixtures/{id}
func (h *Handlers) UpdateFixtureHandler(w http.ResponseWriter, r *http.Request) {
	fixtureID := mux.Vars(r)["id"]

	var req UpdateFixtureRequest
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

	fixture, err := h.fixtures.UpdateFixture(ctx, fixtureID, service.UpdateFixtureInput{
		KickOff:   req.KickOff,
		Status:    req.Status,
		ScoreHome: req.ScoreHome,
		ScoreAway: req.ScoreAway,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "fixture updated successfully", map[string]interface{}{"fixture": fixture})
}

// DeleteFixtureHandler removes a pending fixture.
// DELETE /api/v1/fixtures/{id}
func (h *Handlers) DeleteFixtureHandler(w http.ResponseWriter, r *http.Request) {
	fixtureID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.fixtures.DeleteFixture(ctx, fixtureID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "fixture deleted successfully", nil)
}

// dateQuery parses an RFC3339 or YYYY-MM-DD date query parameter.
func dateQuery(r *http.Request, name string) (time.Time, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", val)
}
