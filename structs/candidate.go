package structs

type CreateCandidateRequest struct {
	FirstName     string   `json:"firstName" binding:"required"`
	LastName      string   `json:"lastName" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone" binding:"required"`
	Skills        []string `json:"skills"`
	ExperienceYrs float64  `json:"experienceYears"`
	ResumeURL     string   `json:"resumeUrl"`
	RequirementID string   `json:"requirementId"`
}

type UpdateCandidateRequest struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Phone         string   `json:"phone"`
	Skills        []string `json:"skills"`
	ExperienceYrs float64  `json:"experienceYears"`
	ResumeURL     string   `json:"resumeUrl"`
	Status        string   `json:"status"`
	RequirementID string   `json:"requirementId"`
}
