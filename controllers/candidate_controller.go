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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func validCandidateStatus(status string) bool {
	switch status {
	case models.CandidateNew, models.CandidateScreening, models.CandidateSubmitted,
		models.CandidateInterview, models.CandidateSelected, models.CandidateRejected:
		return true
	}
	return false
}

// CreateCandidate registers a candidate sourced by the recruiter in session.
func CreateCandidate(ctx *gin.Context) {
	var request structs.CreateCandidateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	// Candidate contacts use personal addresses, not company ones.
	if msg := validation.ValidatePersonalEmail(request.Email); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if msg := validation.ValidatePhone(request.Phone); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	session := middlewares.SessionFromContext(ctx)
	var recruiterID *primitive.ObjectID
	if id, err := primitive.ObjectIDFromHex(session.UserID); err == nil {
		recruiterID = &id
	}

	var requirementID *primitive.ObjectID
	if request.RequirementID != "" {
		id, err := primitive.ObjectIDFromHex(request.RequirementID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
			return
		}
		requirementID = &id
	}

	now := time.Now()
	candidate := models.Candidate{
		ID:            primitive.NewObjectID(),
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		Phone:         request.Phone,
		Skills:        request.Skills,
		ExperienceYrs: request.ExperienceYrs,
		ResumeURL:     request.ResumeURL,
		Status:        models.CandidateNew,
		RequirementID: requirementID,
		RecruiterID:   recruiterID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if requirementID != nil {
		if err := db.GetCollection(db.RequirementsCollection).FindOne(dbCtx, bson.M{"_id": *requirementID}).Err(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requirement not found"})
			return
		}
	}

	if _, err := db.GetCollection(db.CandidatesCollection).InsertOne(dbCtx, candidate); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create candidate", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusCreated, candidate)
}

// GetCandidates lists candidates with pagination and optional filters.
func GetCandidates(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}
	if requirement := ctx.Query("requirementId"); requirement != "" {
		if id, err := primitive.ObjectIDFromHex(requirement); err == nil {
			filter["requirementId"] = id
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.CandidatesCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	candidates := []models.Candidate{}
	if err := cursor.All(dbCtx, &candidates); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode candidates"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": candidates, "total": total, "page": page, "limit": limit})
}

// GetCandidate fetches one candidate by id.
func GetCandidate(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var candidate models.Candidate
	err = db.GetCollection(db.CandidatesCollection).FindOne(dbCtx, bson.M{"_id": id}).Decode(&candidate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusOK, candidate)
}

// UpdateCandidate applies a partial update, including pipeline status moves.
func UpdateCandidate(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return
	}

	var request structs.UpdateCandidateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if request.FirstName != "" {
		update["firstName"] = request.FirstName
	}
	if request.LastName != "" {
		update["lastName"] = request.LastName
	}
	if request.Phone != "" {
		if msg := validation.ValidatePhone(request.Phone); msg != "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		update["phone"] = request.Phone
	}
	if len(request.Skills) > 0 {
		update["skills"] = request.Skills
	}
	if request.ExperienceYrs > 0 {
		update["experienceYears"] = request.ExperienceYrs
	}
	if request.ResumeURL != "" {
		update["resumeUrl"] = request.ResumeURL
	}
	if request.Status != "" {
		if !validCandidateStatus(request.Status) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + request.Status})
			return
		}
		update["status"] = request.Status
	}
	if request.RequirementID != "" {
		requirementID, err := primitive.ObjectIDFromHex(request.RequirementID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement id"})
			return
		}
		update["requirementId"] = requirementID
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.CandidatesCollection).UpdateOne(dbCtx,
		bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Candidate updated"})
}

// DeleteCandidate removes a candidate from the pipeline.
func DeleteCandidate(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.CandidatesCollection).DeleteOne(dbCtx, bson.M{"_id": id})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete candidate", "message": "Please try again"})
		return
	}
	if result.DeletedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	middlewares.LogAction(ctx, "delete_candidate", "candidate", id, nil)
	ctx.JSON(http.StatusOK, gin.H{"message": "Candidate deleted"})
}
