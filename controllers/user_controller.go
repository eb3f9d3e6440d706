package controllers

import (
	"context"
	"net/http"
	"time"

	"staffhub/db"
	"staffhub/middlewares"
	"staffhub/models"
	"staffhub/structs"
	"staffhub/utils"
	"staffhub/validation"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateUser provisions a login for someone who is not on the employee roster,
// for example a partner account.
func CreateUser(ctx *gin.Context) {
	var request structs.CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if msg := validation.ValidateCompanyEmail(request.Email); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if msg := validation.ValidatePassword(request.Password); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	for _, role := range request.Roles {
		if !models.ValidRole(role) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + role})
			return
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collection := db.GetCollection(db.UsersCollection)
	count, err := collection.CountDocuments(dbCtx, bson.M{"email": request.Email})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "message": "Please try again"})
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     request.Email,
		Password:  hashed,
		Name:      request.Name,
		Roles:     request.Roles,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := collection.InsertOne(dbCtx, user); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "message": "Please try again"})
		return
	}

	middlewares.LogAction(ctx, "create_user", "user", user.ID, map[string]interface{}{"roles": user.Roles})
	ctx.JSON(http.StatusCreated, user)
}

// GetUsers lists accounts with pagination.
func GetUsers(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if role := ctx.Query("role"); role != "" {
		filter["roles"] = role
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.UsersCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	users := []models.User{}
	if err := cursor.All(dbCtx, &users); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users, "total": total, "page": page, "limit": limit})
}

// UpdateUserRoles replaces the role set on an account.
func UpdateUserRoles(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var request struct {
		Roles []string `json:"roles" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}
	for _, role := range request.Roles {
		if !models.ValidRole(role) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + role})
			return
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.UsersCollection).UpdateOne(dbCtx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"roles": request.Roles, "updatedAt": time.Now()}})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update roles", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	middlewares.LogAction(ctx, "update_user_roles", "user", id, map[string]interface{}{"roles": request.Roles})
	ctx.JSON(http.StatusOK, gin.H{"message": "Roles updated"})
}
