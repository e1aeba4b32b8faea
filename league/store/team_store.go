// league/store/team_store.go
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

// TeamStore represents the MongoDB data store for teams.
type TeamStore struct {
	collection *mongo.Collection
}

// NewTeamStore creates a new TeamStore instance.
func NewTeamStore(collection *mongo.Collection) *TeamStore {
	return &TeamStore{
		collection: collection,
	}
}

// EnsureIndexes creates the unique name index teams rely on. Uniqueness is
// still checked in the service layer; the index closes the window between
// check and insert.
func (ts *TeamStore) EnsureIndexes(ctx context.Context) error {
	_, err := ts.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create team name index: %w", err)
	}
	return nil
}

// CreateTeam inserts a new team document and fills in its internal id.
func (ts *TeamStore) CreateTeam(ctx context.Context, team *models.Team) error {
	res, err := ts.collection.InsertOne(ctx, team)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("team %s already exists", team.Name)
		}
		return fmt.Errorf("failed to create team %s: %w", team.Name, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		team.ID = oid
	}
	return nil
}

// GetTeamByID retrieves a team by its public id.
func (ts *TeamStore) GetTeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"teamId": teamID}
	err := ts.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &team, nil
}

// GetTeamByName retrieves a team by its (lowercased) name.
func (ts *TeamStore) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"name": name}
	err := ts.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam writes the resolved field values onto the team with the given
// internal id and returns the updated document.
func (ts *TeamStore) UpdateTeam(ctx context.Context, id primitive.ObjectID, update models.TeamUpdate) (*models.Team, error) {
	filter := bson.M{"_id": id}
	set := bson.M{
		"name":          update.Name,
		"manager":       update.Manager,
		"stadium":       update.Stadium,
		"color":         update.Color,
		"meta.nickname": update.Nickname,
		"updatedAt":     time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var team models.Team
	err := ts.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update team %s: %w", id.Hex(), err)
	}
	return &team, nil
}

// UpdateTeamFixtures replaces the team's ordered fixture reference list.
func (ts *TeamStore) UpdateTeamFixtures(ctx context.Context, id primitive.ObjectID, fixtures []primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"meta.fixtures": fixtures, "updatedAt": time.Now().UTC()}}
	res, err := ts.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update fixture list for team %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteTeam removes a team by its public id.
func (ts *TeamStore) DeleteTeam(ctx context.Context, teamID string) error {
	res, err := ts.collection.DeleteOne(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return fmt.Errorf("failed to delete team %s: %w", teamID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListTeams retrieves all team documents, ordered by name.
func (ts *TeamStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := ts.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}
	return teams, nil
}

// SearchTeams retrieves teams whose name, manager, stadium or nickname
// matches the term, case-insensitively.
func (ts *TeamStore) SearchTeams(ctx context.Context, term string) ([]models.Team, error) {
	regex := bson.M{"$regex": term, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": regex},
		{"manager": regex},
		{"stadium": regex},
		{"meta.nickname": regex},
	}}
	cursor, err := ts.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams for %q: %w", term, err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode team search results: %w", err)
	}
	return teams, nil
}
