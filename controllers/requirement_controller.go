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

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateRequirement opens a new position. The posting user (a BDM) is taken
// from the session.
func CreateRequirement(ctx *gin.Context) {
	var request structs.CreateRequirementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	session := middlewares.SessionFromContext(ctx)
	postedBy, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	now := time.Now()
	requirement := models.Requirement{
		ID:          primitive.NewObjectID(),
		Title:       request.Title,
		ClientName:  request.ClientName,
		Location:    request.Location,
		Skills:      request.Skills,
		Positions:   request.Positions,
		Status:      models.RequirementOpen,
		PostedBy:    postedBy,
		Description: request.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.GetCollection(db.RequirementsCollection).InsertOne(dbCtx, requirement); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create requirement", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusCreated, requirement)
}

// GetRequirements lists requirements with pagination and optional filters.
func GetRequirements(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}
	if client := ctx.Query("client"); client != "" {
		filter["clientName"] = client
	}
	if recruiter := ctx.Query("assignedTo"); recruiter != "" {
		if id, err := primitive.ObjectIDFromHex(recruiter); err == nil {
			filter["assignedTo"] = id
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.RequirementsCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requirements", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requirements", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	requirements := []models.Requirement{}
	if err := cursor.All(dbCtx, &requirements); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode requirements"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": requirements, "total": total, "page": page, "limit": limit})
}

// GetRequirement fetches one requirement by id.
func GetRequirement(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var requirement models.Requirement
	err = db.GetCollection(db.RequirementsCollection).FindOne(dbCtx, bson.M{"_id": id}).Decode(&requirement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusOK, requirement)
}

// UpdateRequirement applies a partial update.
func UpdateRequirement(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
		return
	}

	var request structs.UpdateRequirementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if request.Title != "" {
		update["title"] = request.Title
	}
	if request.ClientName != "" {
		update["clientName"] = request.ClientName
	}
	if request.Location != "" {
		update["location"] = request.Location
	}
	if len(request.Skills) > 0 {
		update["skills"] = request.Skills
	}
	if request.Positions > 0 {
		update["positions"] = request.Positions
	}
	if request.Description != "" {
		update["description"] = request.Description
	}
	if request.Status != "" {
		switch request.Status {
		case models.RequirementOpen, models.RequirementOnHold, models.RequirementClosed:
			update["status"] = request.Status
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + request.Status})
			return
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.RequirementsCollection).UpdateOne(dbCtx,
		bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update requirement", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Requirement updated"})
}

// AssignRequirement hands a requirement to a recruiter.
func AssignRequirement(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
		return
	}

	var request structs.AssignRequirementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	recruiterID, err := primitive.ObjectIDFromHex(request.RecruiterID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recruiter id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The recruiter must be an active user holding the RECRUITER role.
	err = db.GetCollection(db.UsersCollection).FindOne(dbCtx, bson.M{
		"_id":   recruiterID,
		"roles": models.RoleRecruiter,
	}).Err()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Recruiter not found"})
		return
	}

	result, err := db.GetCollection(db.RequirementsCollection).UpdateOne(dbCtx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"assignedTo": recruiterID, "updatedAt": time.Now()}})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign requirement", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Requirement assigned"})
}

// DeleteRequirement removes a requirement.
func DeleteRequirement(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.RequirementsCollection).DeleteOne(dbCtx, bson.M{"_id": id})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete requirement", "message": "Please try again"})
		return
	}
	if result.DeletedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Requirement not found"})
		return
	}

	middlewares.LogAction(ctx, "delete_requirement", "requirement", id, nil)
	ctx.JSON(http.StatusOK, gin.H{"message": "Requirement deleted"})
}
