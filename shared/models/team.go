// shared/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMeta carries secondary team data: the optional nickname and the ordered
// list of fixtures the team takes part in.
type TeamMeta struct {
	Nickname string               `bson:"nickname,omitempty" json:"nickname,omitempty"`
	Fixtures []primitive.ObjectID `bson:"fixtures" json:"fixtures"`
}

// Team is a league team document. TeamID is the public identifier exposed on
// the API; the Mongo _id stays internal.
type Team struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TeamID    string             `bson:"teamId" json:"teamId"`
	Name      string             `bson:"name" json:"name"` // unique, stored lowercased
	Manager   string             `bson:"manager" json:"manager"`
	Stadium   string             `bson:"stadium" json:"stadium"`
	Color     string             `bson:"color" json:"color"`
	Meta      TeamMeta           `bson:"meta" json:"meta"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TeamUpdate holds the final field values for a team update. Callers resolve
// fallbacks to the stored document before building it, so every field is
// written as-is.
type TeamUpdate struct {
	Name     string
	Manager  string
	Stadium  string
	Color    string
	Nickname string
}
