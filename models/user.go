package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role labels gate access to API surfaces. A user may hold several.
const (
	RoleSuperadmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleEmployee   = "EMPLOYEE"
	RoleBDM        = "BDM"
	RoleTeamlead   = "TEAMLEAD"
	RolePartner    = "PARTNER"
	RoleRecruiter  = "RECRUITER"
	RoleHR         = "HR"
)

// AllRoles lists every assignable role.
var AllRoles = []string{
	RoleSuperadmin, RoleAdmin, RoleEmployee, RoleBDM,
	RoleTeamlead, RolePartner, RoleRecruiter, RoleHR,
}

// ValidRole reports whether the label is one of the known roles.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account that can sign in to the admin application.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string              `bson:"email" json:"email"`
	Password     string              `bson:"password" json:"-"` // Never return password in JSON
	Name         string              `bson:"name" json:"name"`
	Roles        []string            `bson:"roles" json:"roles"`
	EmployeeID   *primitive.ObjectID `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	LastLoginAt  *time.Time          `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	LastLogoutAt *time.Time          `bson:"lastLogoutAt,omitempty" json:"lastLogoutAt,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
