// league/service/fakes_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/openfooty/league-api/shared/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stand-ins for the store contracts. They reproduce the error
// conventions of the Mongo-backed stores (ErrNoDocuments for absent records,
// "already exists" for duplicate inserts) so the services exercise the same
// branches they hit in production.

type fakeTeamStore struct {
	mu    sync.Mutex
	teams map[string]*models.Team // keyed by public TeamID

	getByIDCalls int
	listCalls    int
	failOnInsert error
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: make(map[string]*models.Team)}
}

func (f *fakeTeamStore) CreateTeam(ctx context.Context, team *models.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOnInsert != nil {
		return f.failOnInsert
	}
	for _, existing := range f.teams {
		if existing.Name == team.Name {
			return fmt.Errorf("team %s already exists", team.Name)
		}
	}
	team.ID = primitive.NewObjectID()
	cp := *team
	f.teams[team.TeamID] = &cp
	return nil
}

func (f *fakeTeamStore) GetTeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getByIDCalls++
	team, ok := f.teams[teamID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *team
	return &cp, nil
}

func (f *fakeTeamStore) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, team := range f.teams {
		if team.Name == name {
			cp := *team
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeTeamStore) UpdateTeam(ctx context.Context, id primitive.ObjectID, update models.TeamUpdate) (*models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, team := range f.teams {
		if team.ID == id {
			team.Name = update.Name
			team.Manager = update.Manager
			team.Stadium = update.Stadium
			team.Color = update.Color
			team.Meta.Nickname = update.Nickname
			team.UpdatedAt = time.Now().UTC()
			cp := *team
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeTeamStore) UpdateTeamFixtures(ctx context.Context, id primitive.ObjectID, fixtures []primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, team := range f.teams {
		if team.ID == id {
			team.Meta.Fixtures = fixtures
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeTeamStore) DeleteTeam(ctx context.Context, teamID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.teams[teamID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.teams, teamID)
	return nil
}

func (f *fakeTeamStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]models.Team, 0, len(f.teams))
	for _, team := range f.teams {
		out = append(out, *team)
	}
	return out, nil
}

func (f *fakeTeamStore) SearchTeams(ctx context.Context, term string) ([]models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	term = strings.ToLower(term)
	var out []models.Team
	for _, team := range f.teams {
		if strings.Contains(team.Name, term) || strings.Contains(team.Manager, term) ||
			strings.Contains(team.Stadium, term) || strings.Contains(team.Meta.Nickname, term) {
			out = append(out, *team)
		}
	}
	return out, nil
}

type fakeFixtureStore struct {
	mu       sync.Mutex
	fixtures map[string]*models.Fixture // keyed by public FixtureID

	getByIDCalls int
	listCalls    int
}

func newFakeFixtureStore() *fakeFixtureStore {
	return &fakeFixtureStore{fixtures: make(map[string]*models.Fixture)}
}

func (f *fakeFixtureStore) CreateFixture(ctx context.Context, fixture *models.Fixture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fixture.ID = primitive.NewObjectID()
	cp := *fixture
	f.fixtures[fixture.FixtureID] = &cp
	return nil
}

func (f *fakeFixtureStore) GetFixtureByID(ctx context.Context, fixtureID string) (*models.Fixture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getByIDCalls++
	fixture, ok := f.fixtures[fixtureID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *fixture
	return &cp, nil
}

func (f *fakeFixtureStore) UpdateFixture(ctx context.Context, fixtureID string, update models.FixtureUpdate) (*models.Fixture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fixture, ok := f.fixtures[fixtureID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if update.KickOff != nil {
		fixture.KickOff = *update.KickOff
	}
	if update.Status != nil {
		fixture.Status = *update.Status
	}
	if update.Scores != nil {
		fixture.Report.Scores = *update.Scores
	}
	fixture.UpdatedAt = time.Now().UTC()
	cp := *fixture
	return &cp, nil
}

func (f *fakeFixtureStore) DeleteFixture(ctx context.Context, fixtureID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fixtures[fixtureID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.fixtures, fixtureID)
	return nil
}

func (f *fakeFixtureStore) ListFixtures(ctx context.Context, statuses []string, from, to time.Time) ([]models.Fixture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var out []models.Fixture
	for _, fixture := range f.fixtures {
		if !allowed[fixture.Status] {
			continue
		}
		if fixture.KickOff.Before(from) || fixture.KickOff.After(to) {
			continue
		}
		out = append(out, *fixture)
	}
	return out, nil
}

func (f *fakeFixtureStore) CountByTeamAndKickOff(ctx context.Context, teamRef primitive.ObjectID, kickOff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, fixture := range f.fixtures {
		if (fixture.Home == teamRef || fixture.Away == teamRef) && fixture.KickOff.Equal(kickOff) {
			count++
		}
	}
	return count, nil
}

func (f *fakeFixtureStore) SearchFixtures(ctx context.Context, term string) ([]models.Fixture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	term = strings.ToLower(term)
	var out []models.Fixture
	for _, fixture := range f.fixtures {
		if strings.Contains(strings.ToLower(fixture.Venue), term) ||
			strings.Contains(fixture.Status, term) ||
			strings.Contains(strings.ToLower(fixture.Link), term) {
			out = append(out, *fixture)
		}
	}
	return out, nil
}

var errCacheDown = errors.New("cache unavailable")

// fakeCache keeps JSON blobs in memory. Toggling broken makes every call
// fail, which the services must treat as a miss rather than an error.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
	broken  bool

	getCalls int
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.broken {
		return errCacheDown
	}
	buf, ok := f.entries[key]
	if !ok {
		return errors.New("cache entry not found")
	}
	return json.Unmarshal(buf, dest)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.broken {
		return errCacheDown
	}
	buf, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = buf
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return errCacheDown
	}
	for _, key := range keys {
		delete(f.entries, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

func (f *fakeCache) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}

func (f *fakeCache) wasDeleted(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.deleted {
		if k == key {
			return true
		}
	}
	return false
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return fmt.Errorf("user %s already exists", user.Email)
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *user
	return &cp, nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[admin.Email]; ok {
		return fmt.Errorf("admin %s already exists", admin.Email)
	}
	admin.ID = primitive.NewObjectID()
	cp := *admin
	f.admins[admin.Email] = &cp
	return nil
}

func (f *fakeAdminStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *admin
	return &cp, nil
}
