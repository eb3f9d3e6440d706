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

// SubmitTimesheet files one week of hours for the employee in session.
// Resubmitting the same week replaces a draft or rejected sheet.
func SubmitTimesheet(ctx *gin.Context) {
	var request structs.SubmitTimesheetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	weekStart, err := time.Parse(validation.DateLayout, request.WeekStart)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week start (YYYY-MM-DD)"})
		return
	}
	if weekStart.Weekday() != time.Monday {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Week must start on a Monday"})
		return
	}
	for _, h := range request.Hours {
		if h < 0 || h > 24 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Daily hours must be between 0 and 24"})
			return
		}
	}

	session := middlewares.SessionFromContext(ctx)
	employeeID, err := employeeIDForSession(ctx, session)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No employee record linked to this account"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collection := db.GetCollection(db.TimesheetsCollection)

	// An approved or submitted sheet for the week cannot be silently replaced.
	err = collection.FindOne(dbCtx, bson.M{
		"employeeId": employeeID,
		"weekStart":  request.WeekStart,
		"status":     bson.M{"$in": []string{models.TimesheetSubmitted, models.TimesheetApproved}},
	}).Err()
	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "A timesheet for this week is already submitted"})
		return
	}
	if err != mongo.ErrNoDocuments {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}

	now := time.Now()
	timesheet := models.Timesheet{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		WeekStart:  request.WeekStart,
		Hours:      request.Hours,
		Notes:      request.Notes,
		Status:     models.TimesheetSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Replace any draft/rejected sheet for the same week.
	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(dbCtx,
		bson.M{"employeeId": employeeID, "weekStart": request.WeekStart},
		timesheet, opts); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit timesheet", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusCreated, timesheet)
}

// GetTimesheets lists timesheets. Non-reviewers only see their own.
func GetTimesheets(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}

	session := middlewares.SessionFromContext(ctx)
	if !session.HasAnyRole([]string{models.RoleTeamlead, models.RoleAdmin, models.RoleSuperadmin}) {
		employeeID, err := employeeIDForSession(ctx, session)
		if err != nil {
			ctx.JSON(http.StatusOK, gin.H{"data": []models.Timesheet{}, "total": 0, "page": page, "limit": limit})
			return
		}
		filter["employeeId"] = employeeID
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.TimesheetsCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timesheets", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"weekStart": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timesheets", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	timesheets := []models.Timesheet{}
	if err := cursor.All(dbCtx, &timesheets); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode timesheets"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": timesheets, "total": total, "page": page, "limit": limit})
}

// ReviewTimesheet approves or rejects a submitted sheet.
func ReviewTimesheet(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timesheet id"})
		return
	}

	var request structs.ReviewTimesheetRequest
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

	status := models.TimesheetApproved
	if request.Status == "REJECTED" {
		status = models.TimesheetRejected
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.TimesheetsCollection).UpdateOne(dbCtx,
		bson.M{"_id": id, "status": models.TimesheetSubmitted},
		bson.M{"$set": bson.M{
			"status":     status,
			"reviewedBy": reviewerID,
			"updatedAt":  time.Now(),
		}})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review timesheet", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No submitted timesheet with this id"})
		return
	}

	middlewares.LogAction(ctx, "review_timesheet", "timesheet", id, map[string]interface{}{"status": status})
	ctx.JSON(http.StatusOK, gin.H{"message": "Timesheet " + status})
}
