// league/store/user_store.go
package store

import (
	"context"
	"fmt"

	"github.com/openfooty/league-api/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore represents the MongoDB data store for user accounts.
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(collection *mongo.Collection) *UserStore {
	return &UserStore{
		collection: collection,
	}
}

// EnsureIndexes creates the unique email index.
func (us *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := us.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	return nil
}

// CreateUser inserts a new user document and fills in its internal id.
func (us *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	res, err := us.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %s already exists", user.Email)
		}
		return fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetUserByEmail retrieves a user by email.
func (us *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := us.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &user, nil
}
