// league/service/contracts.go
package service

import (
	"context"
	"time"

	"github.com/openfooty/league-api/shared/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The services accept these narrow store contracts instead of the concrete
// Mongo/Redis stores so tests can substitute in-memory implementations. The
// league/store package satisfies all of them.

// TeamStore is the persistence contract for teams.
type TeamStore interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, teamID string) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	UpdateTeam(ctx context.Context, id primitive.ObjectID, update models.TeamUpdate) (*models.Team, error)
	UpdateTeamFixtures(ctx context.Context, id primitive.ObjectID, fixtures []primitive.ObjectID) error
	DeleteTeam(ctx context.Context, teamID string) error
	ListTeams(ctx context.Context) ([]models.Team, error)
	SearchTeams(ctx context.Context, term string) ([]models.Team, error)
}

// FixtureStore is the persistence contract for fixtures.
type FixtureStore interface {
	CreateFixture(ctx context.Context, fixture *models.Fixture) error
	GetFixtureByID(ctx context.Context, fixtureID string) (*models.Fixture, error)
	UpdateFixture(ctx context.Context, fixtureID string, update models.FixtureUpdate) (*models.Fixture, error)
	DeleteFixture(ctx context.Context, fixtureID string) error
	ListFixtures(ctx context.Context, statuses []string, from, to time.Time) ([]models.Fixture, error)
	CountByTeamAndKickOff(ctx context.Context, teamRef primitive.ObjectID, kickOff time.Time) (int64, error)
	SearchFixtures(ctx context.Context, term string) ([]models.Fixture, error)
}

// UserStore is the persistence contract for user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminStore is the persistence contract for admin accounts.
type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// Cache is the side-cache contract. Implementations must return
// store.ErrCacheMiss-compatible errors for absent keys; the services treat
// every cache error as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
