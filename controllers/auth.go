package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"staffhub/db"
	"staffhub/models"
	"staffhub/services"
	"staffhub/structs"
	"staffhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login authenticates against the users collection and issues a JWT carrying
// the account's role set.
func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.GetCollection(db.UsersCollection).FindOne(dbCtx, bson.M{"email": request.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email, user.Roles, cfg.JWT.Expiry)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	now := time.Now()
	db.GetCollection(db.UsersCollection).UpdateOne(dbCtx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"lastLoginAt": now}},
	)

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Sign-in successful",
		"accessToken": token,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"email": user.Email,
			"name":  user.Name,
			"roles": user.Roles,
		},
	})
}

// SendOTP starts the password reset flow: POST /send-otp {email}.
func SendOTP(ctx *gin.Context) {
	var request structs.SendOTPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Check email format"})
		return
	}

	session, err := resetService.RequestOTP(ctx.Request.Context(), request.Email)
	if err != nil {
		status, message := resetErrorResponse(err, "Failed to send OTP. Please try again.")
		ctx.JSON(status, gin.H{"status": false, "message": message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "OTP sent to your email",
		// Advisory only: the server does not reject on this timestamp.
		"expiresAt": session.ExpiresAt.Format(time.RFC3339),
	})
}

// VerifyOTP advances the flow on a correct code: POST /verify-otp {email, otp}.
func VerifyOTP(ctx *gin.Context) {
	var request structs.VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Check email and OTP format"})
		return
	}

	attemptsLeft, err := resetService.VerifyOTP(ctx.Request.Context(), request.Email, request.OTP)
	if err != nil {
		status, message := resetErrorResponse(err, "OTP verification failed. Please try again.")
		ctx.JSON(status, gin.H{"success": false, "message": message, "attemptsLeft": attemptsLeft})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified"})
}

// UpdatePassword completes the flow: POST /update-password.
func UpdatePassword(ctx *gin.Context) {
	var request structs.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Check the submitted fields"})
		return
	}

	err := resetService.UpdatePassword(ctx.Request.Context(), request.Email, request.UpdatePassword, request.ConfirmPassword)
	if err != nil {
		status, message := resetErrorResponse(err, "Failed to update password. Please try again.")
		ctx.JSON(status, gin.H{"success": false, "message": message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Password successfully changed"})
}

// ResetBack steps the wizard backwards without side effects.
func ResetBack(ctx *gin.Context) {
	var request structs.ResetBackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	step, err := resetService.Back(ctx.Request.Context(), request.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to step back. Please try again."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"step": int(step)})
}

// ResetStatus reports the wizard's current step for the given email.
func ResetStatus(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	step, session, err := resetService.Status(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reset status"})
		return
	}

	response := gin.H{"step": int(step)}
	if session != nil {
		response["attemptsLeft"] = session.AttemptsLeft
		response["expiresAt"] = session.ExpiresAt.Format(time.RFC3339)
	}
	ctx.JSON(http.StatusOK, response)
}

// Logout records a best-effort session close: PUT /logout/:userId. The client
// fires this on page unload and never retries, so it always answers 200.
func Logout(ctx *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = db.GetCollection(db.UsersCollection).UpdateOne(dbCtx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastLogoutAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Best-effort logout update failed for %s: %v", userID.Hex(), err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// resetErrorResponse maps flow errors onto HTTP status plus a user-facing
// message, falling back to a generic retry prompt for transport failures.
func resetErrorResponse(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUnknownEmail):
		return http.StatusNotFound, services.ErrUnknownEmail.Error()
	case errors.Is(err, services.ErrRequestInFlight):
		return http.StatusConflict, services.ErrRequestInFlight.Error()
	case errors.Is(err, services.ErrNoActiveFlow), errors.Is(err, services.ErrWrongStep):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidOTP):
		return http.StatusUnauthorized, "Incorrect OTP. Please try again."
	case errors.Is(err, services.ErrAttemptsExhausted):
		return http.StatusTooManyRequests, "Too many incorrect attempts. Request a new OTP."
	default:
		return http.StatusInternalServerError, fallback
	}
}
