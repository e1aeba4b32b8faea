// league/api/requests.go
package api

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/openfooty/league-api/shared/models"
)

// Request DTOs with their schemas. Every payload is validated before any
// business check runs; handlers surface rule violations as 400s.

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
	)
}

type RegisterAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r RegisterAdminRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&r.Role, validation.Required, validation.In(models.RoleRoot, models.RoleSuper)),
	)
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
	)
}

type CreateTeamRequest struct {
	Name     string `json:"name"`
	Manager  string `json:"manager"`
	Stadium  string `json:"stadium"`
	Color    string `json:"color"`
	Nickname string `json:"nickname"`
}

func (r CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Manager, validation.Required),
		validation.Field(&r.Stadium, validation.Required),
		validation.Field(&r.Color, validation.Required),
	)
}

type UpdateTeamRequest struct {
	Name     string `json:"name"`
	Manager  string `json:"manager"`
	Stadium  string `json:"stadium"`
	Color    string `json:"color"`
	Nickname string `json:"nickname"`
}

func (r UpdateTeamRequest) Validate() error {
	// All fields optional; absent fields keep their stored values.
	return nil
}

type CreateFixtureRequest struct {
	Home    string    `json:"home"`
	Away    string    `json:"away"`
	KickOff time.Time `json:"kickOff"`
}

func (r CreateFixtureRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Home, validation.Required),
		validation.Field(&r.Away, validation.Required),
		validation.Field(&r.KickOff, validation.Required),
	)
}

type UpdateFixtureRequest struct {
	KickOff   *time.Time `json:"kickOff"`
	Status    *string    `json:"status"`
	ScoreHome *int       `json:"scoreHome"`
	ScoreAway *int       `json:"scoreAway"`
}

func (r UpdateFixtureRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.In(
			models.StatusPending, models.StatusOnGoing, models.StatusCompleted, models.StatusAbandoned,
		)),
		validation.Field(&r.ScoreHome, validation.Min(0)),
		validation.Field(&r.ScoreAway, validation.Min(0)),
	)
}
