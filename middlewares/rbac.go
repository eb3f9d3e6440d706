package middlewares

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"staffhub/db"
	"staffhub/models"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	mongodbadapter "github.com/casbin/mongodb-adapter/v3"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var enforcer *casbin.Enforcer

const rbacModelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// InitCasbin initializes the Casbin enforcer with the MongoDB adapter and
// makes sure the default resource policies exist.
func InitCasbin(databaseURI string) error {
	adapter, err := mongodbadapter.NewAdapter(databaseURI)
	if err != nil {
		return fmt.Errorf("failed to create Casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModelText)
	if err != nil {
		return fmt.Errorf("failed to create Casbin model: %w", err)
	}

	enforcer, err = casbin.NewEnforcer(m, adapter)
	if err != nil {
		return fmt.Errorf("failed to create Casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	ensureDefaultPolicies()

	log.Println("Casbin RBAC initialized successfully")
	return nil
}

// ensureDefaultPolicies seeds the resource/action policies for each role.
// Idempotent: AddPolicy skips rules that already exist.
func ensureDefaultPolicies() {
	defaultPolicies := []struct {
		role     string
		resource string
		action   string
	}{
		{models.RoleSuperadmin, "employee", "delete"},
		{models.RoleSuperadmin, "user", "write"},
		{models.RoleAdmin, "employee", "delete"},
		{models.RoleAdmin, "requirement", "delete"},
		{models.RoleAdmin, "candidate", "delete"},
		{models.RoleAdmin, "leave", "review"},
		{models.RoleAdmin, "timesheet", "review"},
		{models.RoleHR, "leave", "review"},
		{models.RoleTeamlead, "leave", "review"},
		{models.RoleTeamlead, "timesheet", "review"},
	}

	for _, policy := range defaultPolicies {
		exists, _ := enforcer.HasPolicy(policy.role, policy.resource, policy.action)
		if !exists {
			enforcer.AddPolicy(policy.role, policy.resource, policy.action)
			log.Printf("Added default policy: %s can %s %s", policy.role, policy.action, policy.resource)
		}
	}

	// Superadmin inherits everything admin can do
	if has, _ := enforcer.HasGroupingPolicy(models.RoleSuperadmin, models.RoleAdmin); !has {
		enforcer.AddGroupingPolicy(models.RoleSuperadmin, models.RoleAdmin)
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Printf("Warning: Failed to save policies: %v", err)
	}
}

// RBACMiddleware checks resource/action permission for any of the caller's
// roles. Runs after AuthMiddleware.
func RBACMiddleware(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if !session.Authenticated {
			denyUnauthenticated(c)
			return
		}

		for _, role := range session.Roles {
			allowed, err := enforcer.Enforce(role, resource, action)
			if err != nil {
				log.Printf("Casbin enforce error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Permission check failed"})
				c.Abort()
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error":    "Insufficient permissions",
			"redirect": DefaultLandingPath,
		})
		c.Abort()
	}
}

// GetEnforcer returns the Casbin enforcer instance
func GetEnforcer() *casbin.Enforcer {
	return enforcer
}

// LogAction records a privileged mutation to the audit collection.
func LogAction(c *gin.Context, action, resourceType string, resourceID primitive.ObjectID, details map[string]interface{}) error {
	session := SessionFromContext(c)
	if !session.Authenticated {
		return fmt.Errorf("no session in context")
	}

	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id in session: %w", err)
	}

	entry := models.ActionLog{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		UserEmail:    session.Email,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		Timestamp:    time.Now(),
		Details:      details,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = db.GetCollection(db.ActionLogsCollection).InsertOne(ctx, entry)
	return err
}
