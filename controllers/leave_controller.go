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

// ApplyLeave files a leave request for the employee in session.
func ApplyLeave(ctx *gin.Context) {
	var request structs.ApplyLeaveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	start, err := time.Parse(validation.DateLayout, request.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date (YYYY-MM-DD)"})
		return
	}
	end, err := time.Parse(validation.DateLayout, request.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date (YYYY-MM-DD)"})
		return
	}
	if end.Before(start) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	session := middlewares.SessionFromContext(ctx)
	employeeID, err := employeeIDForSession(ctx, session)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No employee record linked to this account"})
		return
	}

	now := time.Now()
	leave := models.Leave{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		Type:       request.Type,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Reason:     request.Reason,
		Status:     models.LeavePending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.GetCollection(db.LeavesCollection).InsertOne(dbCtx, leave); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit leave request", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusCreated, leave)
}

// GetLeaves lists leave requests. Non-reviewers only see their own.
func GetLeaves(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}

	session := middlewares.SessionFromContext(ctx)
	if !session.HasAnyRole([]string{models.RoleHR, models.RoleTeamlead, models.RoleAdmin, models.RoleSuperadmin}) {
		employeeID, err := employeeIDForSession(ctx, session)
		if err != nil {
			ctx.JSON(http.StatusOK, gin.H{"data": []models.Leave{}, "total": 0, "page": page, "limit": limit})
			return
		}
		filter["employeeId"] = employeeID
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.LeavesCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leave requests", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leave requests", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	leaves := []models.Leave{}
	if err := cursor.All(dbCtx, &leaves); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leave requests"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": leaves, "total": total, "page": page, "limit": limit})
}

// ReviewLeave approves or rejects a pending request.
func ReviewLeave(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave id"})
		return
	}

	var request structs.ReviewLeaveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	session := middlewares.SessionFromContext(ctx)
	reviewerID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Only pending requests can be reviewed.
	result, err := db.GetCollection(db.LeavesCollection).UpdateOne(dbCtx,
		bson.M{"_id": id, "status": models.LeavePending},
		bson.M{"$set": bson.M{
			"status":     request.Status,
			"reviewedBy": reviewerID,
			"reviewNote": request.ReviewNote,
			"updatedAt":  time.Now(),
		}})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review leave request", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No pending leave request with this id"})
		return
	}

	middlewares.LogAction(ctx, "review_leave", "leave", id, map[string]interface{}{"status": request.Status})
	ctx.JSON(http.StatusOK, gin.H{"message": "Leave request " + request.Status})
}

// employeeIDForSession resolves the employee document linked to the logged-in
// user.
func employeeIDForSession(ctx *gin.Context, session middlewares.Session) (primitive.ObjectID, error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.GetCollection(db.UsersCollection).FindOne(dbCtx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return primitive.NilObjectID, err
	}
	if user.EmployeeID == nil {
		return primitive.NilObjectID, mongo.ErrNoDocuments
	}
	return *user.EmployeeID, nil
}
