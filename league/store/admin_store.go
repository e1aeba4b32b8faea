// league/store/admin_store.go
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

// AdminStore represents the MongoDB data store for admin accounts.
type AdminStore struct {
	collection *mongo.Collection
}

// NewAdminStore creates a new AdminStore instance.
func NewAdminStore(collection *mongo.Collection) *AdminStore {
	return &AdminStore{
		collection: collection,
	}
}

// EnsureIndexes creates the unique email index.
func (as *AdminStore) EnsureIndexes(ctx context.Context) error {
	_, err := as.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin email index: %w", err)
	}
	return nil
}

// CreateAdmin inserts a new admin document and fills in its internal id.
func (as *AdminStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	res, err := as.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("admin %s already exists", admin.Email)
		}
		return fmt.Errorf("failed to create admin %s: %w", admin.Email, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

// GetAdminByEmail retrieves an admin by email.
func (as *AdminStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := as.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &admin, nil
}
