package controllers

import (
	"context"
	"net/http"
	"time"

	"staffhub/db"
	"staffhub/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetDashboard returns the headline counts shown on the landing page.
func GetDashboard(ctx *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	employees, err := db.GetCollection(db.EmployeesCollection).CountDocuments(dbCtx, bson.M{"status": models.EmployeeActive})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}
	openRequirements, err := db.GetCollection(db.RequirementsCollection).CountDocuments(dbCtx, bson.M{"status": models.RequirementOpen})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}
	candidatesInPipeline, err := db.GetCollection(db.CandidatesCollection).CountDocuments(dbCtx, bson.M{
		"status": bson.M{"$nin": []string{models.CandidateSelected, models.CandidateRejected}},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}
	upcomingInterviews, err := db.GetCollection(db.InterviewsCollection).CountDocuments(dbCtx, bson.M{
		"status":      models.InterviewScheduled,
		"scheduledAt": bson.M{"$gte": time.Now()},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}
	activePlacements, err := db.GetCollection(db.PlacementsCollection).CountDocuments(dbCtx, bson.M{"status": models.PlacementActive})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}
	pendingLeaves, err := db.GetCollection(db.LeavesCollection).CountDocuments(dbCtx, bson.M{"status": models.LeavePending})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}
	pendingTimesheets, err := db.GetCollection(db.TimesheetsCollection).CountDocuments(dbCtx, bson.M{"status": models.TimesheetSubmitted})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"activeEmployees":      employees,
		"openRequirements":     openRequirements,
		"candidatesInPipeline": candidatesInPipeline,
		"upcomingInterviews":   upcomingInterviews,
		"activePlacements":     activePlacements,
		"pendingLeaves":        pendingLeaves,
		"pendingTimesheets":    pendingTimesheets,
	})
}
