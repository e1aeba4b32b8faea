// shared/models/fixture.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixture lifecycle statuses. Transitions are not restricted: an update may
// overwrite any status with any other.
const (
	StatusPending   = "pending"
	StatusOnGoing   = "on-going"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// FixtureStatuses lists every valid status, in the order used for the
// unfiltered listing.
var FixtureStatuses = []string{StatusPending, StatusOnGoing, StatusCompleted, StatusAbandoned}

// Scores is the home/away score pair of a fixture report.
type Scores struct {
	Home int `bson:"home" json:"home"`
	Away int `bson:"away" json:"away"`
}

// Report carries the result data of a fixture.
type Report struct {
	Scores Scores `bson:"scores" json:"scores"`
}

// Fixture is a scheduled match between two teams. FixtureID is the public
// identifier; Home and Away reference the internal team ids. Venue is copied
// from the home team's stadium at creation and Link is derived from FixtureID.
type Fixture struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FixtureID string             `bson:"fixtureId" json:"fixtureId"`
	Home      primitive.ObjectID `bson:"home" json:"home"`
	Away      primitive.ObjectID `bson:"away" json:"away"`
	KickOff   time.Time          `bson:"kickOff" json:"kickOff"`
	Status    string             `bson:"status" json:"status"`
	Venue     string             `bson:"venue" json:"venue"`
	Link      string             `bson:"link" json:"link"`
	Report    Report             `bson:"report" json:"report"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FixtureUpdate is a partial fixture update. Nil fields are left untouched;
// score fields are always written as a pair once either side changes.
type FixtureUpdate struct {
	KickOff *time.Time
	Status  *string
	Scores  *Scores
}

// ValidStatus reports whether s is one of the known fixture statuses.
func ValidStatus(s string) bool {
	for _, known := range FixtureStatuses {
		if s == known {
			return true
		}
	}
	return false
}
