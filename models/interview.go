package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interview statuses.
const (
	InterviewScheduled = "SCHEDULED"
	InterviewCompleted = "COMPLETED"
	InterviewCancelled = "CANCELLED"
	InterviewNoShow    = "NO_SHOW"
)

// Interview is a scheduled round between a candidate and a client.
type Interview struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CandidateID   primitive.ObjectID `bson:"candidateId" json:"candidateId"`
	RequirementID primitive.ObjectID `bson:"requirementId" json:"requirementId"`
	Round         string             `bson:"round" json:"round"` // e.g. "L1", "L2", "Client"
	ScheduledAt   time.Time          `bson:"scheduledAt" json:"scheduledAt"`
	Mode          string             `bson:"mode" json:"mode"` // "PHONE", "VIDEO", "ONSITE"
	Status        string             `bson:"status" json:"status"`
	Feedback      string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
