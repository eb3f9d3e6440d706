package structs

type CreateRequirementRequest struct {
	Title       string   `json:"title" binding:"required"`
	ClientName  string   `json:"clientName" binding:"required"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills" binding:"required,min=1"`
	Positions   int      `json:"positions" binding:"required,min=1"`
	Description string   `json:"description"`
}

type UpdateRequirementRequest struct {
	Title       string   `json:"title"`
	ClientName  string   `json:"clientName"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	Positions   int      `json:"positions"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
}

type AssignRequirementRequest struct {
	RecruiterID string `json:"recruiterId" binding:"required"`
}
