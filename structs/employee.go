package structs

type CreateEmployeeRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PersonalEmail string `json:"personalEmail" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Role          string `json:"role" binding:"required"`
	Designation   string `json:"designation"`
	ManagerID     string `json:"managerId"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
	JoiningDate   string `json:"joiningDate" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PersonalEmail string `json:"personalEmail"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	Designation   string `json:"designation"`
	ManagerID     string `json:"managerId"`
	Status        string `json:"status"`
}
