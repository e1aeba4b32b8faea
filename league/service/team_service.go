// league/service/team_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openfooty/league-api/shared/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TeamService encapsulates the business logic for teams, including the
// read-through cache on team reads and free-text search.
type TeamService struct {
	teams    TeamStore
	fixtures FixtureStore
	cache    Cache
	logger   zerolog.Logger
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(teams TeamStore, fixtures FixtureStore, cache Cache, logger zerolog.Logger) *TeamService {
	return &TeamService{
		teams:    teams,
		fixtures: fixtures,
		cache:    cache,
		logger:   logger,
	}
}

// CreateTeamInput carries the validated fields for a new team.
type CreateTeamInput struct {
	Name      string
	Manager   string
	Stadium   string
	Color     string
	Nickname  string
	CreatedBy primitive.ObjectID
}

// UpdateTeamInput is a partial team update; empty fields keep their stored
// values.
type UpdateTeamInput struct {
	Name     string
	Manager  string
	Stadium  string
	Color    string
	Nickname string
}

// SearchResults groups the team and fixture matches of one search term.
type SearchResults struct {
	Teams    []models.Team    `json:"teams"`
	Fixtures []models.Fixture `json:"fixtures"`
}

// CreateTeam persists a new team. Names are unique case-insensitively, so
// name, manager, stadium, color and nickname are all stored lowercased the
// way the API exposes them.
func (ts *TeamService) CreateTeam(ctx context.Context, in CreateTeamInput) (*models.Team, error) {
	name := strings.ToLower(in.Name)

	existing, err := ts.teams.GetTeamByName(ctx, name)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, dependency("team lookup by name", err)
	}
	if existing != nil {
		return nil, &ConflictError{Message: "team already exists"}
	}

	now := time.Now().UTC()
	team := &models.Team{
		TeamID:  uuid.NewString(),
		Name:    name,
		Manager: strings.ToLower(in.Manager),
		Stadium: strings.ToLower(in.Stadium),
		Color:   strings.ToLower(in.Color),
		Meta: models.TeamMeta{
			Nickname: strings.ToLower(in.Nickname),
			Fixtures: []primitive.ObjectID{},
		},
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ts.teams.CreateTeam(ctx, team); err != nil {
		// The unique index may beat the lookup above under concurrent creates.
		if strings.Contains(err.Error(), "already exists") {
			return nil, &ConflictError{Message: "team already exists"}
		}
		return nil, dependency("team insert", err)
	}

	ts.invalidate(ctx, TeamsCacheKey)
	return team, nil
}

// GetTeam returns the team with the given public id, serving from cache when
// possible and populating the cache after a persistence hit.
func (ts *TeamService) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	var cached models.Team
	if err := ts.cache.GetJSON(ctx, teamID, &cached); err == nil {
		return &cached, nil
	}

	team, err := ts.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "team not found"}
		}
		return nil, dependency("team lookup", err)
	}

	ts.cachePut(ctx, teamID, team)
	return team, nil
}

// ListTeams returns all teams. The second result reports whether the listing
// came from the cache; cached listings are returned as stored, without
// re-pagination.
func (ts *TeamService) ListTeams(ctx context.Context) ([]models.Team, bool, error) {
	var cached []models.Team
	if err := ts.cache.GetJSON(ctx, TeamsCacheKey, &cached); err == nil {
		return cached, true, nil
	}

	teams, err := ts.teams.ListTeams(ctx)
	if err != nil {
		return nil, false, dependency("team listing", err)
	}
	if len(teams) == 0 {
		return nil, false, &NotFoundError{Message: "no teams found"}
	}

	ts.cachePut(ctx, TeamsCacheKey, teams)
	return teams, false, nil
}

// UpdateTeam applies a partial update. A supplied name must not collide with
// any existing team.
func (ts *TeamService) UpdateTeam(ctx context.Context, teamID string, in UpdateTeamInput) (*models.Team, error) {
	team, err := ts.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "team does not exist"}
		}
		return nil, dependency("team lookup", err)
	}

	if in.Name != "" {
		existing, err := ts.teams.GetTeamByName(ctx, strings.ToLower(in.Name))
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dependency("team lookup by name", err)
		}
		if existing != nil {
			return nil, &ConflictError{Message: "team already exists"}
		}
	}

	update := models.TeamUpdate{
		Name:     fallback(strings.ToLower(in.Name), team.Name),
		Manager:  fallback(strings.ToLower(in.Manager), team.Manager),
		Stadium:  fallback(strings.ToLower(in.Stadium), team.Stadium),
		Color:    fallback(strings.ToLower(in.Color), team.Color),
		Nickname: fallback(strings.ToLower(in.Nickname), team.Meta.Nickname),
	}

	updated, err := ts.teams.UpdateTeam(ctx, team.ID, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "team does not exist"}
		}
		return nil, dependency("team update", err)
	}

	ts.invalidate(ctx, teamID, TeamsCacheKey)
	return updated, nil
}

// DeleteTeam removes a team by its public id.
func (ts *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	if err := ts.teams.DeleteTeam(ctx, teamID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: "team not found"}
		}
		return dependency("team delete", err)
	}

	ts.invalidate(ctx, teamID, TeamsCacheKey)
	return nil
}

// Search runs a free-text search across teams and fixtures, cached under the
// raw term. The second result reports a cache hit.
func (ts *TeamService) Search(ctx context.Context, term string) (*SearchResults, bool, error) {
	if term == "" {
		return nil, false, &ValidationError{Message: "please pass a search value"}
	}

	var cached SearchResults
	if err := ts.cache.GetJSON(ctx, term, &cached); err == nil {
		return &cached, true, nil
	}

	teams, err := ts.teams.SearchTeams(ctx, term)
	if err != nil {
		return nil, false, dependency("team search", err)
	}
	fixtures, err := ts.fixtures.SearchFixtures(ctx, term)
	if err != nil {
		return nil, false, dependency("fixture search", err)
	}

	results := &SearchResults{Teams: teams, Fixtures: fixtures}
	ts.cachePut(ctx, term, results)
	return results, false, nil
}

// cachePut populates a cache entry after a persistence hit. Failures only
// cost the next reader a round trip, so they are logged and dropped.
func (ts *TeamService) cachePut(ctx context.Context, key string, value interface{}) {
	if err := ts.cache.SetJSON(ctx, key, value); err != nil {
		ts.logger.Warn().Err(err).Str("key", key).Msg("cache population failed")
	}
}

// invalidate drops cache entries after a write. Failures are non-fatal to
// the response.
func (ts *TeamService) invalidate(ctx context.Context, keys ...string) {
	if err := ts.cache.Delete(ctx, keys...); err != nil {
		ts.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

func fallback(val, prior string) string {
	if val == "" {
		return prior
	}
	return val
}
