// league/service/fixture_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openfooty/league-api/shared/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FixtureService encapsulates the fixture scheduling workflow: validation,
// team resolution, availability checks, link generation, persistence and
// cache invalidation.
//
// The multi-step create sequence (fixture insert, two team-list updates,
// invalidations) is not transactional. A failure mid-sequence surfaces as an
// error without rollback; concurrent creates for the same team and kickoff
// can both pass the availability check before either writes.
type FixtureService struct {
	fixtures FixtureStore
	teams    TeamStore
	cache    Cache
	baseURL  string
	logger   zerolog.Logger
}

// NewFixtureService creates a new FixtureService instance. baseURL is the
// public prefix for shareable fixture links.
func NewFixtureService(fixtures FixtureStore, teams TeamStore, cache Cache, baseURL string, logger zerolog.Logger) *FixtureService {
	return &FixtureService{
		fixtures: fixtures,
		teams:    teams,
		cache:    cache,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// CreateFixtureInput carries the validated fields for a new fixture. HomeID
// and AwayID are public team ids.
type CreateFixtureInput struct {
	HomeID    string
	AwayID    string
	KickOff   time.Time
	CreatedBy primitive.ObjectID
}

// UpdateFixtureInput is a partial fixture update; nil fields are left
// untouched.
type UpdateFixtureInput struct {
	KickOff   *time.Time
	Status    *string
	ScoreHome *int
	ScoreAway *int
}

// FixtureQuery filters a fixture listing. An empty status set means all
// statuses; zero From/To default to the epoch and now respectively.
type FixtureQuery struct {
	Statuses []string
	From     time.Time
	To       time.Time
}

// TeamHasFixtureAt reports whether the team already has a fixture, home or
// away, at exactly the given instant. Read-only.
func (fs *FixtureService) TeamHasFixtureAt(ctx context.Context, teamRef primitive.ObjectID, instant time.Time) (bool, error) {
	count, err := fs.fixtures.CountByTeamAndKickOff(ctx, teamRef, instant.UTC())
	if err != nil {
		return false, dependency("fixture availability check", err)
	}
	return count > 0, nil
}

// CreateFixture schedules a new fixture between two teams.
func (fs *FixtureService) CreateFixture(ctx context.Context, in CreateFixtureInput) (*models.Fixture, error) {
	if in.HomeID == in.AwayID {
		return nil, &ConflictError{Message: "home and away must be different teams"}
	}

	home, err := fs.resolveTeam(ctx, in.HomeID, "home")
	if err != nil {
		return nil, err
	}
	away, err := fs.resolveTeam(ctx, in.AwayID, "away")
	if err != nil {
		return nil, err
	}

	kickOff := in.KickOff.UTC()

	// Home is checked first, so a double conflict reports the home side.
	for _, side := range []*models.Team{home, away} {
		busy, err := fs.TeamHasFixtureAt(ctx, side.ID, kickOff)
		if err != nil {
			return nil, err
		}
		if busy {
			return nil, &ConflictError{
				Message: fmt.Sprintf("%s already has a fixture at %s", side.Name, kickOff.Format(time.RFC3339)),
			}
		}
	}

	fixtureID := uuid.NewString()
	now := time.Now().UTC()
	fixture := &models.Fixture{
		FixtureID: fixtureID,
		Home:      home.ID,
		Away:      away.ID,
		KickOff:   kickOff,
		Status:    models.StatusPending,
		Venue:     home.Stadium,
		Link:      FixtureLink(fs.baseURL, fixtureID),
		Report:    models.Report{},
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := fs.fixtures.CreateFixture(ctx, fixture); err != nil {
		return nil, dependency("fixture insert", err)
	}

	// Ordered append, not deduplicated. A failure here leaves the fixture
	// persisted without a matching team reference; there is no rollback.
	if err := fs.teams.UpdateTeamFixtures(ctx, home.ID, append(home.Meta.Fixtures, fixture.ID)); err != nil {
		return nil, dependency("home team fixture list update", err)
	}
	if err := fs.teams.UpdateTeamFixtures(ctx, away.ID, append(away.Meta.Fixtures, fixture.ID)); err != nil {
		return nil, dependency("away team fixture list update", err)
	}

	fs.invalidate(ctx,
		FixturesCacheKey(AllStatuses),
		FixturesCacheKey(models.StatusPending),
		TeamsCacheKey,
		home.TeamID,
		away.TeamID,
	)

	return fixture, nil
}

// GetFixture returns the fixture with the given public id, serving from
// cache when possible.
func (fs *FixtureService) GetFixture(ctx context.Context, fixtureID string) (*models.Fixture, error) {
	var cached models.Fixture
	if err := fs.cache.GetJSON(ctx, fixtureID, &cached); err == nil {
		return &cached, nil
	}

	fixture, err := fs.fixtures.GetFixtureByID(ctx, fixtureID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "no fixture found"}
		}
		return nil, dependency("fixture lookup", err)
	}

	fs.cachePut(ctx, fixtureID, fixture)
	return fixture, nil
}

// ListFixtures returns fixtures matching the query. The second result
// reports whether the listing came from the cache; cached listings are
// returned as stored, without re-pagination.
func (fs *FixtureService) ListFixtures(ctx context.Context, q FixtureQuery) ([]models.Fixture, bool, error) {
	statuses := q.Statuses
	cacheStatus := AllStatuses
	if len(statuses) == 0 {
		statuses = models.FixtureStatuses
	} else if len(statuses) == 1 {
		cacheStatus = statuses[0]
	}

	from := q.From
	to := q.To
	if from.IsZero() {
		from = time.Unix(0, 0).UTC()
	}
	if to.IsZero() {
		to = time.Now().UTC()
	}

	key := FixturesCacheKey(cacheStatus)
	var cached []models.Fixture
	if err := fs.cache.GetJSON(ctx, key, &cached); err == nil {
		return cached, true, nil
	}

	fixtures, err := fs.fixtures.ListFixtures(ctx, statuses, from, to)
	if err != nil {
		return nil, false, dependency("fixture listing", err)
	}
	if len(fixtures) == 0 {
		return nil, false, &NotFoundError{Message: "no fixtures found"}
	}

	fs.cachePut(ctx, key, fixtures)
	return fixtures, false, nil
}

// UpdateFixture applies a partial update. A new kickoff re-runs the
// availability check against both stored sides; score values for the unset
// side fall back to the loaded fixture record.
func (fs *FixtureService) UpdateFixture(ctx context.Context, fixtureID string, in UpdateFixtureInput) (*models.Fixture, error) {
	fixture, err := fs.fixtures.GetFixtureByID(ctx, fixtureID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "fixture not found"}
		}
		return nil, dependency("fixture lookup", err)
	}

	update := models.FixtureUpdate{}

	if in.KickOff != nil {
		kickOff := in.KickOff.UTC()
		sides := []struct {
			label string
			ref   primitive.ObjectID
		}{
			{"home", fixture.Home},
			{"away", fixture.Away},
		}
		for _, side := range sides {
			busy, err := fs.TeamHasFixtureAt(ctx, side.ref, kickOff)
			if err != nil {
				return nil, err
			}
			if busy {
				return nil, &ConflictError{
					Message: fmt.Sprintf("%s already has a fixture at %s", side.label, kickOff.Format(time.RFC3339)),
				}
			}
		}
		update.KickOff = &kickOff
	}

	if in.Status != nil {
		// No transition validation: any status may overwrite any other.
		update.Status = in.Status
	}

	if in.ScoreHome != nil || in.ScoreAway != nil {
		scores := fixture.Report.Scores
		if in.ScoreHome != nil {
			scores.Home = *in.ScoreHome
		}
		if in.ScoreAway != nil {
			scores.Away = *in.ScoreAway
		}
		update.Scores = &scores
	}

	updated, err := fs.fixtures.UpdateFixture(ctx, fixtureID, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "fixture not found"}
		}
		return nil, dependency("fixture update", err)
	}

	fs.invalidate(ctx, fixtureID)
	return updated, nil
}

// DeleteFixture removes a fixture. Only pending fixtures may be deleted.
func (fs *FixtureService) DeleteFixture(ctx context.Context, fixtureID string) error {
	fixture, err := fs.fixtures.GetFixtureByID(ctx, fixtureID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: "fixture not found"}
		}
		return dependency("fixture lookup", err)
	}

	if fixture.Status != models.StatusPending {
		return &DeleteNotAllowedError{Message: "fixture cannot be deleted"}
	}

	if err := fs.fixtures.DeleteFixture(ctx, fixtureID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: "fixture not found"}
		}
		return dependency("fixture delete", err)
	}

	fs.invalidate(ctx, fixtureID, FixturesCacheKey(AllStatuses), FixturesCacheKey(models.StatusPending))
	return nil
}

// resolveTeam loads a participating team by public id, naming the side in
// the not-found error.
func (fs *FixtureService) resolveTeam(ctx context.Context, teamID, side string) (*models.Team, error) {
	team, err := fs.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: fmt.Sprintf("%s does not exist", side)}
		}
		return nil, dependency(side+" team lookup", err)
	}
	return team, nil
}

func (fs *FixtureService) cachePut(ctx context.Context, key string, value interface{}) {
	if err := fs.cache.SetJSON(ctx, key, value); err != nil {
		fs.logger.Warn().Err(err).Str("key", key).Msg("cache population failed")
	}
}

func (fs *FixtureService) invalidate(ctx context.Context, keys ...string) {
	if err := fs.cache.Delete(ctx, keys...); err != nil {
		fs.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
