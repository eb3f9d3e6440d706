package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee statuses.
const (
	EmployeeActive   = "ACTIVE"
	EmployeeInactive = "INACTIVE"
)

// Employee is a staff member of the agency.
type Employee struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeCode  string              `bson:"employeeCode" json:"employeeCode"`
	FirstName     string              `bson:"firstName" json:"firstName"`
	LastName      string              `bson:"lastName" json:"lastName"`
	Email         string              `bson:"email" json:"email"` // company address
	PersonalEmail string              `bson:"personalEmail" json:"personalEmail"`
	Phone         string              `bson:"phone" json:"phone"`
	Role          string              `bson:"role" json:"role"` // primary role label
	Designation   string              `bson:"designation" json:"designation"`
	ManagerID     *primitive.ObjectID `bson:"managerId,omitempty" json:"managerId,omitempty"`
	DateOfBirth   string              `bson:"dateOfBirth" json:"dateOfBirth"` // YYYY-MM-DD
	JoiningDate   string              `bson:"joiningDate" json:"joiningDate"` // YYYY-MM-DD
	Status        string              `bson:"status" json:"status"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}
