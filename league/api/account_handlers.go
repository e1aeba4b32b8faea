// league/api/account_handlers.go
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openfooty/league-api/league/service"
	"github.com/openfooty/league-api/shared/api"
)

// RegisterUserHandler creates a new user account.
// POST /api/v1/register
func (h *Handlers) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
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

	user, token, err := h.accounts.RegisterUser(ctx, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusCreated, "user created successfully", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// LoginUserHandler authenticates a user.
// POST /api/v1/login
func (h *Handlers) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
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

	user, token, err := h.accounts.LoginUser(ctx, service.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "user login successful", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// RegisterAdminHandler creates a new admin account.
// POST /api/v1/admin/register
func (h *Handlers) RegisterAdminHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterAdminRequest
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

	admin, token, err := h.accounts.RegisterAdmin(ctx, service.RegisterAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusCreated, "admin created successfully", map[string]interface{}{
		"admin": admin,
		"token": token,
	})
}

// LoginAdminHandler authenticates an admin.
// POST /api/v1/admin/login
func (h *Handlers) LoginAdminHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
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

	admin, token, err := h.accounts.LoginAdmin(ctx, service.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	api.WriteSuccess(w, http.StatusOK, "admin login successful", map[string]interface{}{
		"user":  admin,
		"token": token,
	})
}
