package structs

type ApplyLeaveRequest struct {
	Type      string `json:"type" binding:"required,oneof=CASUAL SICK EARNED"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type ReviewLeaveRequest struct {
	Status     string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	ReviewNote string `json:"reviewNote"`
}
