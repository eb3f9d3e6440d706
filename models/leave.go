package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Leave request statuses.
const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// Leave is an employee leave request awaiting manager review.
type Leave struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeID primitive.ObjectID  `bson:"employeeId" json:"employeeId"`
	Type       string              `bson:"type" json:"type"` // "CASUAL", "SICK", "EARNED"
	StartDate  string              `bson:"startDate" json:"startDate"` // YYYY-MM-DD
	EndDate    string              `bson:"endDate" json:"endDate"`
	Reason     string              `bson:"reason" json:"reason"`
	Status     string              `bson:"status" json:"status"`
	ReviewedBy *primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewNote string              `bson:"reviewNote,omitempty" json:"reviewNote,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}
