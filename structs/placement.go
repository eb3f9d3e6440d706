package structs

type CreatePlacementRequest struct {
	CandidateID   string  `json:"candidateId" binding:"required"`
	RequirementID string  `json:"requirementId" binding:"required"`
	ClientName    string  `json:"clientName" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	BillRate      float64 `json:"billRate" binding:"required,gt=0"`
}

type UpdatePlacementRequest struct {
	EndDate  string  `json:"endDate"`
	BillRate float64 `json:"billRate"`
	Status   string  `json:"status"`
}
