package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requirement statuses.
const (
	RequirementOpen   = "OPEN"
	RequirementOnHold = "ON_HOLD"
	RequirementClosed = "CLOSED"
)

// Requirement is an open job position sourced from a client.
type Requirement struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string              `bson:"title" json:"title"`
	ClientName  string              `bson:"clientName" json:"clientName"`
	Location    string              `bson:"location" json:"location"`
	Skills      []string            `bson:"skills" json:"skills"`
	Positions   int                 `bson:"positions" json:"positions"`
	Status      string              `bson:"status" json:"status"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"` // recruiter
	PostedBy    primitive.ObjectID  `bson:"postedBy" json:"postedBy"`                         // BDM
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
