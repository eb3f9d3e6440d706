package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Candidate pipeline statuses.
const (
	CandidateNew       = "NEW"
	CandidateScreening = "SCREENING"
	CandidateSubmitted = "SUBMITTED"
	CandidateInterview = "INTERVIEW"
	CandidateSelected  = "SELECTED"
	CandidateRejected  = "REJECTED"
)

// Candidate is a person being marketed against requirements.
type Candidate struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName     string              `bson:"firstName" json:"firstName"`
	LastName      string              `bson:"lastName" json:"lastName"`
	Email         string              `bson:"email" json:"email"`
	Phone         string              `bson:"phone" json:"phone"`
	Skills        []string            `bson:"skills" json:"skills"`
	ExperienceYrs float64             `bson:"experienceYears" json:"experienceYears"`
	ResumeURL     string              `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`
	Status        string              `bson:"status" json:"status"`
	RequirementID *primitive.ObjectID `bson:"requirementId,omitempty" json:"requirementId,omitempty"`
	RecruiterID   *primitive.ObjectID `bson:"recruiterId,omitempty" json:"recruiterId,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}
