package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timesheet statuses.
const (
	TimesheetDraft     = "DRAFT"
	TimesheetSubmitted = "SUBMITTED"
	TimesheetApproved  = "APPROVED"
	TimesheetRejected  = "REJECTED"
)

// Timesheet captures one employee week of logged hours.
type Timesheet struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeID primitive.ObjectID  `bson:"employeeId" json:"employeeId"`
	WeekStart  string              `bson:"weekStart" json:"weekStart"` // Monday, YYYY-MM-DD
	Hours      []float64           `bson:"hours" json:"hours"`         // 7 entries, Mon..Sun
	Notes      string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     string              `bson:"status" json:"status"`
	ReviewedBy *primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}
