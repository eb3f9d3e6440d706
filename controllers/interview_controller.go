package controllers

import (
	"context"
	"net/http"
	"time"

	"staffhub/db"
	"staffhub/models"
	"staffhub/structs"
	"staffhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func validInterviewStatus(status string) bool {
	switch status {
	case models.InterviewScheduled, models.InterviewCompleted,
		models.InterviewCancelled, models.InterviewNoShow:
		return true
	}
	return false
}

// ScheduleInterview books a round for a candidate on a requirement and moves
// the candidate into the INTERVIEW stage.
func ScheduleInterview(ctx *gin.Context) {
	var request structs.ScheduleInterviewRequest
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
	if request.ScheduledAt.Before(time.Now()) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Interview time must be in the future"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.GetCollection(db.CandidatesCollection).FindOne(dbCtx, bson.M{"_id": candidateID}).Err(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Candidate not found"})
		return
	}
	if err := db.GetCollection(db.RequirementsCollection).FindOne(dbCtx, bson.M{"_id": requirementID}).Err(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requirement not found"})
		return
	}

	now := time.Now()
	interview := models.Interview{
		ID:            primitive.NewObjectID(),
		CandidateID:   candidateID,
		RequirementID: requirementID,
		Round:         request.Round,
		ScheduledAt:   request.ScheduledAt,
		Mode:          request.Mode,
		Status:        models.InterviewScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.GetCollection(db.InterviewsCollection).InsertOne(dbCtx, interview); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule interview", "message": "Please try again"})
		return
	}

	db.GetCollection(db.CandidatesCollection).UpdateOne(dbCtx,
		bson.M{"_id": candidateID},
		bson.M{"$set": bson.M{"status": models.CandidateInterview, "updatedAt": now}})

	ctx.JSON(http.StatusCreated, interview)
}

// GetInterviews lists interviews with pagination and optional filters.
func GetInterviews(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}
	if candidate := ctx.Query("candidateId"); candidate != "" {
		if id, err := primitive.ObjectIDFromHex(candidate); err == nil {
			filter["candidateId"] = id
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.InterviewsCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interviews", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"scheduledAt": 1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interviews", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	interviews := []models.Interview{}
	if err := cursor.All(dbCtx, &interviews); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode interviews"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": interviews, "total": total, "page": page, "limit": limit})
}

// UpdateInterview reschedules or closes out a round.
func UpdateInterview(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview id"})
		return
	}

	var request structs.UpdateInterviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if request.ScheduledAt != nil {
		update["scheduledAt"] = *request.ScheduledAt
	}
	if request.Mode != "" {
		update["mode"] = request.Mode
	}
	if request.Feedback != "" {
		update["feedback"] = request.Feedback
	}
	if request.Status != "" {
		if !validInterviewStatus(request.Status) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + request.Status})
			return
		}
		update["status"] = request.Status
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var interview models.Interview
	err = db.GetCollection(db.InterviewsCollection).FindOneAndUpdate(dbCtx,
		bson.M{"_id": id}, bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&interview)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update interview", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusOK, interview)
}
