// league/store/fixture_store.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/openfooty/league-api/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FixtureStore represents the MongoDB data store for fixtures.
type FixtureStore struct {
	collection *mongo.Collection
}

// NewFixtureStore creates a new FixtureStore instance.
func NewFixtureStore(collection *mongo.Collection) *FixtureStore {
	return &FixtureStore{
		collection: collection,
	}
}

// CreateFixture inserts a new fixture document and fills in its internal id.
func (fs *FixtureStore) CreateFixture(ctx context.Context, fixture *models.Fixture) error {
	res, err := fs.collection.InsertOne(ctx, fixture)
	if err != nil {
		return fmt.Errorf("failed to create fixture %s: %w", fixture.FixtureID, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		fixture.ID = oid
	}
	return nil
}

// GetFixtureByID retrieves a fixture by its public id.
func (fs *FixtureStore) GetFixtureByID(ctx context.Context, fixtureID string) (*models.Fixture, error) {
	var fixture models.Fixture
	filter := bson.M{"fixtureId": fixtureID}
	err := fs.collection.FindOne(ctx, filter).Decode(&fixture)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &fixture, nil
}

// UpdateFixture applies a partial update to the fixture with the given public
// id and returns the updated document.
func (fs *FixtureStore) UpdateFixture(ctx context.Context, fixtureID string, update models.FixtureUpdate) (*models.Fixture, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.KickOff != nil {
		set["kickOff"] = update.KickOff.UTC()
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Scores != nil {
		set["report.scores.home"] = update.Scores.Home
		set["report.scores.away"] = update.Scores.Away
	}

	filter := bson.M{"fixtureId": fixtureID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var fixture models.Fixture
	err := fs.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&fixture)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update fixture %s: %w", fixtureID, err)
	}
	return &fixture, nil
}

// DeleteFixture removes a fixture by its public id.
func (fs *FixtureStore) DeleteFixture(ctx context.Context, fixtureID string) error {
	res, err := fs.collection.DeleteOne(ctx, bson.M{"fixtureId": fixtureID})
	if err != nil {
		return fmt.Errorf("failed to delete fixture %s: %w", fixtureID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListFixtures retrieves fixtures in any of the given statuses whose kickoff
// falls inside [from, to], ordered by kickoff.
func (fs *FixtureStore) ListFixtures(ctx context.Context, statuses []string, from, to time.Time) ([]models.Fixture, error) {
	filter := bson.M{
		"status":  bson.M{"$in": statuses},
		"kickOff": bson.M{"$gte": from.UTC(), "$lte": to.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "kickOff", Value: 1}})
	cursor, err := fs.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find fixtures: %w", err)
	}
	defer cursor.Close(ctx)

	var fixtures []models.Fixture
	if err = cursor.All(ctx, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return fixtures, nil
}

// CountByTeamAndKickOff counts fixtures in which the team plays, home or
// away, at exactly the given instant. The availability check is an exact
// match on the kickoff, not a window.
func (fs *FixtureStore) CountByTeamAndKickOff(ctx context.Context, teamRef primitive.ObjectID, kickOff time.Time) (int64, error) {
	filter := bson.M{
		"$or":     []bson.M{{"home": teamRef}, {"away": teamRef}},
		"kickOff": kickOff.UTC(),
	}
	count, err := fs.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count fixtures for team %s at %s: %w", teamRef.Hex(), kickOff, err)
	}
	return count, nil
}

// SearchFixtures retrieves fixtures whose venue, status or link matches the
// term, case-insensitively.
func (fs *FixtureStore) SearchFixtures(ctx context.Context, term string) ([]models.Fixture, error) {
	regex := bson.M{"$regex": term, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"venue": regex},
		{"status": regex},
		{"link": regex},
	}}
	cursor, err := fs.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search fixtures for %q: %w", term, err)
	}
	defer cursor.Close(ctx)

	var fixtures []models.Fixture
	if err = cursor.All(ctx, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode fixture search results: %w", err)
	}
	return fixtures, nil
}
