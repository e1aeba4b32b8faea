// league/api/handlers.go
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/openfooty/league-api/league/auth"
	"github.com/openfooty/league-api/league/service"
	"github.com/openfooty/league-api/shared/api"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handlers holds references to the services that handle business logic.
type Handlers struct {
	accounts *service.AccountService
	teams    *service.TeamService
	fixtures *service.FixtureService
	tokens   *auth.TokenIssuer
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewHandlers is the constructor for the API handlers.
func NewHandlers(accounts *service.AccountService, teams *service.TeamService, fixtures *service.FixtureService, tokens *auth.TokenIssuer, timeout time.Duration, logger zerolog.Logger) *Handlers {
	return &Handlers{
		accounts: accounts,
		teams:    teams,
		fixtures: fixtures,
		tokens:   tokens,
		timeout:  timeout,
		logger:   logger,
	}
}

// RegisterRoutes registers all API endpoints under /api/v1.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	root := router.PathPrefix("/api/v1").Subrouter()

	root.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	root.HandleFunc("/register", h.RegisterUserHandler).Methods(http.MethodPost)
	root.HandleFunc("/login", h.LoginUserHandler).Methods(http.MethodPost)
	root.HandleFunc("/admin/register", h.RegisterAdminHandler).Methods(http.MethodPost)
	root.HandleFunc("/admin/login", h.LoginAdminHandler).Methods(http.MethodPost)

	// Read endpoints require any valid token.
	authed := root.NewRoute().Subrouter()
	authed.Use(h.RequireAuth)
	authed.HandleFunc("/teams", h.ListTeamsHandler).Methods(http.MethodGet)
	authed.HandleFunc("/teams/{id}", h.GetTeamHandler).Methods(http.MethodGet)
	authed.HandleFunc("/fixtures", h.ListFixturesHandler).Methods(http.MethodGet)
	authed.HandleFunc("/fixtures/{id}", h.GetFixtureHandler).Methods(http.MethodGet)
	authed.HandleFunc("/search", h.SearchHandler).Methods(http.MethodGet)

	// Write endpoints and the admin-scoped reads require an admin token.
	admin := root.NewRoute().Subrouter()
	admin.Use(h.RequireAuth, h.RequireAdmin)
	admin.HandleFunc("/teams", h.CreateTeamHandler).Methods(http.MethodPost)
	admin.HandleFunc("/teams/{id}", h.UpdateTeamHandler).Methods(http.MethodPut)
	admin.HandleFunc("/teams/{id}", h.DeleteTeamHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/fixtures", h.CreateFixtureHandler).Methods(http.MethodPost)
	admin.HandleFunc("/fixtures/{id}", h.UpdateFixtureHandler).Methods(http.MethodPut)
	admin.HandleFunc("/fixtures/{id}", h.DeleteFixtureHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/teams/{id}", h.GetTeamHandler).Methods(http.MethodGet)
	admin.HandleFunc("/admin/fixtures/{id}", h.GetFixtureHandler).Methods(http.MethodGet)
}

// HealthHandler reports service liveness.
// GET /api/v1/health
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteSuccess(w, http.StatusOK, "league api is up and running", nil)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the known set is logged and reported as a 500.
func (h *Handlers) writeServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
		notFoundErr   *service.NotFoundError
		deleteErr     *service.DeleteNotAllowedError
		unauthErr     *service.UnauthorizedError
	)

	switch {
	case errors.As(err, &validationErr):
		api.WriteBadRequest(w, validationErr.Message)
	case errors.As(err, &conflictErr):
		api.WriteBadRequest(w, conflictErr.Message)
	case errors.As(err, &deleteErr):
		api.WriteBadRequest(w, deleteErr.Message)
	case errors.As(err, &notFoundErr):
		api.WriteNotFound(w, notFoundErr.Message)
	case errors.As(err, &unauthErr):
		api.WriteUnauthorized(w, unauthErr.Message)
	default:
		h.logger.Error().Err(err).Msg("unexpected service error")
		api.WriteInternalServerError(w, "server error")
	}
}

// accountRef resolves the authenticated account's internal id for createdBy
// references. A missing or malformed id yields the zero ObjectID.
func accountRef(r *http.Request) primitive.ObjectID {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(claims.AccountID)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// pageQuery parses the page/limit query parameters; unset or malformed
// values fall back to the pagination defaults downstream.
func pageQuery(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}
