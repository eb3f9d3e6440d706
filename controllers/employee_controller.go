package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"staffhub/db"
	"staffhub/middlewares"
	"staffhub/models"
	"staffhub/structs"
	"staffhub/table"
	"staffhub/utils"
	"staffhub/validation"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// employeeFormValues maps the create request onto the validation form.
func employeeFormValues(req structs.CreateEmployeeRequest) map[string]string {
	return map[string]string{
		"firstName":     req.FirstName,
		"lastName":      req.LastName,
		"email":         req.Email,
		"personalEmail": req.PersonalEmail,
		"phone":         req.Phone,
		"dateOfBirth":   req.DateOfBirth,
		"joiningDate":   req.JoiningDate,
	}
}

// CreateEmployee onboards an employee and provisions their login account.
func CreateEmployee(ctx *gin.Context) {
	var request structs.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	// Field rules beyond shape: domain email, phone, age, joining window.
	fieldErrors := validation.EmployeeForm.Validate(employeeFormValues(request))
	for _, msg := range fieldErrors {
		if msg != "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrors})
			return
		}
	}

	if !models.ValidRole(request.Role) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + request.Role})
		return
	}

	var managerID *primitive.ObjectID
	if request.ManagerID != "" {
		id, err := primitive.ObjectIDFromHex(request.ManagerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager id"})
			return
		}
		managerID = &id
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	employees := db.GetCollection(db.EmployeesCollection)

	// Manager must exist before we hang a report off them.
	if managerID != nil {
		if err := employees.FindOne(dbCtx, bson.M{"_id": *managerID}).Err(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Manager not found"})
			return
		}
	}

	if err := employees.FindOne(dbCtx, bson.M{"email": request.Email}).Err(); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "An employee with this email already exists"})
		return
	} else if err != mongo.ErrNoDocuments {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}

	now := time.Now()
	count, _ := employees.CountDocuments(dbCtx, bson.M{})
	employee := models.Employee{
		ID:            primitive.NewObjectID(),
		EmployeeCode:  generateEmployeeCode(count + 1),
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		PersonalEmail: request.PersonalEmail,
		Phone:         request.Phone,
		Role:          request.Role,
		Designation:   request.Designation,
		ManagerID:     managerID,
		DateOfBirth:   request.DateOfBirth,
		JoiningDate:   request.JoiningDate,
		Status:        models.EmployeeActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := employees.InsertOne(dbCtx, employee); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee", "message": "Please try again"})
		return
	}

	// Provision the login account with a temporary password; the employee
	// resets it through the OTP flow.
	tempPassword := utils.GenerateRandomCode(8) + "a!"
	hash, err := utils.HashPassword(tempPassword)
	if err == nil {
		user := models.User{
			ID:         primitive.NewObjectID(),
			Email:      employee.Email,
			Password:   hash,
			Name:       employee.FirstName + " " + employee.LastName,
			Roles:      []string{employee.Role},
			EmployeeID: &employee.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := db.GetCollection(db.UsersCollection).InsertOne(dbCtx, user); err != nil {
			log.Printf("Failed to provision account for %s: %v", employee.Email, err)
		} else if mailer != nil {
			if err := mailer.SendWelcomeEmail(employee.PersonalEmail, employee.Email); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", employee.PersonalEmail, err)
			}
		}
	}

	ctx.JSON(http.StatusCreated, employee)
}

// GetEmployees lists employees with pagination and an optional role filter.
func GetEmployees(ctx *gin.Context) {
	page, limit := utils.ParsePagination(ctx)
	skip := (page - 1) * limit

	filter := bson.M{}
	if role := ctx.Query("role"); role != "" {
		filter["role"] = role
	}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.EmployeesCollection)
	total, err := collection.CountDocuments(dbCtx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees", "message": "Please try again"})
		return
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)).SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(dbCtx, filter, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	employees := []models.Employee{}
	if err := cursor.All(dbCtx, &employees); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode employees"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":  employees,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetEmployee fetches one employee by id.
func GetEmployee(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var employee models.Employee
	err = db.GetCollection(db.EmployeesCollection).FindOne(dbCtx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "message": "Please try again"})
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// UpdateEmployee applies a partial update.
func UpdateEmployee(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var request structs.UpdateEmployeeRequest
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
	if request.PersonalEmail != "" {
		if msg := validation.ValidatePersonalEmail(request.PersonalEmail); msg != "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		update["personalEmail"] = request.PersonalEmail
	}
	if request.Phone != "" {
		if msg := validation.ValidatePhone(request.Phone); msg != "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		update["phone"] = request.Phone
	}
	if request.Role != "" {
		if !models.ValidRole(request.Role) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + request.Role})
			return
		}
		update["role"] = request.Role
	}
	if request.Designation != "" {
		update["designation"] = request.Designation
	}
	if request.Status != "" {
		if request.Status != models.EmployeeActive && request.Status != models.EmployeeInactive {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + request.Status})
			return
		}
		update["status"] = request.Status
	}
	if request.ManagerID != "" {
		managerID, err := primitive.ObjectIDFromHex(request.ManagerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager id"})
			return
		}
		update["managerId"] = managerID
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.EmployeesCollection).UpdateOne(dbCtx,
		bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee", "message": "Please try again"})
		return
	}
	if result.MatchedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

// DeleteEmployee removes an employee and logs the action.
func DeleteEmployee(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.EmployeesCollection).DeleteOne(dbCtx, bson.M{"_id": id})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee", "message": "Please try again"})
		return
	}
	if result.DeletedCount == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	if err := middlewares.LogAction(ctx, "delete_employee", "employee", id, nil); err != nil {
		log.Printf("Failed to log employee deletion: %v", err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// employeeExportColumns describe the CSV layout for employee exports.
var employeeExportColumns = []table.Column{
	{Key: "employeeCode", Label: "Code"},
	{Key: "firstName", Label: "First Name"},
	{Key: "lastName", Label: "Last Name"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "role", Label: "Role"},
	{Key: "joiningDate", Label: "Joining Date"},
	{Key: "status", Label: "Status"},
}

// ExportEmployees streams the employee roster as CSV.
func ExportEmployees(ctx *gin.Context) {
	filter := bson.M{}
	if role := ctx.Query("role"); role != "" {
		filter["role"] = role
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := db.GetCollection(db.EmployeesCollection).Find(dbCtx, filter,
		options.Find().SetSort(bson.M{"employeeCode": 1}))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees", "message": "Please try again"})
		return
	}
	defer cursor.Close(dbCtx)

	var rows []table.Row
	for cursor.Next(dbCtx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		rows = append(rows, table.Row(doc))
	}

	tbl := table.New(employeeExportColumns, "No employees found")
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="employees.csv"`)
	if err := tbl.WriteCSV(ctx.Writer, rows); err != nil {
		log.Printf("Employee CSV export failed: %v", err)
	}
}

func generateEmployeeCode(seq int64) string {
	return fmt.Sprintf("DQ%04d", seq)
}
