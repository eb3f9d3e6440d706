package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionLog records a privileged mutation for audit purposes.
type ActionLog struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID     `bson:"userId" json:"userId"`
	UserEmail    string                 `bson:"userEmail" json:"userEmail"`
	Action       string                 `bson:"action" json:"action"` // "delete_employee", "approve_leave", ...
	ResourceType string                 `bson:"resourceType" json:"resourceType"`
	ResourceID   primitive.ObjectID     `bson:"resourceId" json:"resourceId"`
	IPAddress    string                 `bson:"ipAddress" json:"ipAddress"`
	UserAgent    string                 `bson:"userAgent" json:"userAgent"`
	Timestamp    time.Time              `bson:"timestamp" json:"timestamp"`
	Details      map[string]interface{} `bson:"details,omitempty" json:"details,omitempty"`
}
