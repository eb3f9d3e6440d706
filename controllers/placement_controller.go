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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePlacement converts a selected candidate into a placement and closes
// the pipeline entry.
func CreatePlacement(ctx *gin.Context) {
	var request structs.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	candidateID, err := primitive.ObjectIDFromHex(request.CandidateID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return
	}
	requirementID, err := primitive.ObjectIDFromHex(request.RequirementID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
		return
	}

	session := middlewares.SessionFromContext(ctx)
	recruiterID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var candidate models.Candidate
	if err := db.GetCollection(db.CandidatesCollection).FindOne(dbCtx, bson.M{"_id": candidateID}).Decode(&candidate); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Candidate not found"})
		return
	}
	if candidate.Status != models.CandidateSelected {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only selected candidates can be placed"})
		return
	}

	now := time.Now()
	placement := models.Placement{
		ID:            primitive.NewObjectID(),
		CandidateID:   candidateID,
		RequirementID: requirementID,
		RecruiterID:   recruiterID,
		ClientName:    request.ClientName,
		StartDate:     request.StartDate,
		BillRate:      request.BillRate,
		Status:        models.PlacementActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.GetCollection(db.PlacementsCollection).InsertOne(dbCtx, placement); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create placement", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusCreated, placement)
}

// GetPlacements lists placements with pagination.
func GetPlacements(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.PlacementsCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch placements", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch placements", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	placements := []models.Placement{}
	if err := cursor.All(dbCtx, &placements); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode placements"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": placements, "total": total, "page": page, "limit": limit})
}

// UpdatePlacement ends or reprices an engagement.
func UpdatePlacement(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid placement id"})
		return
	}

	var request structs.UpdatePlacementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if request.EndDate != "" {
		update["endDate"] = request.EndDate
	}
	if request.BillRate > 0 {
		update["billRate"] = request.BillRate
	}
	if request.Status != "" {
		switch request.Status {
		case models.PlacementActive, models.PlacementCompleted, models.PlacementTerminated:
			update["status"] = request.Status
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + request.Status})
			return
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.PlacementsCollection).UpdateOne(dbCtx,
		bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update placement", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Placement not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Placement updated"})
}
