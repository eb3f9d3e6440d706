package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placement statuses.
const (
	PlacementActive     = "ACTIVE"
	PlacementCompleted  = "COMPLETED"
	PlacementTerminated = "TERMINATED"
)

// Placement records a candidate placed on a requirement.
type Placement struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CandidateID   primitive.ObjectID `bson:"candidateId" json:"candidateId"`
	RequirementID primitive.ObjectID `bson:"requirementId" json:"requirementId"`
	RecruiterID   primitive.ObjectID `bson:"recruiterId" json:"recruiterId"`
	ClientName    string             `bson:"clientName" json:"clientName"`
	StartDate     string             `bson:"startDate" json:"startDate"` // YYYY-MM-DD
	EndDate       string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	BillRate      float64            `bson:"billRate" json:"billRate"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
