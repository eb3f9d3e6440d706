package structs

type SubmitTimesheetRequest struct {
	WeekStart string    `json:"weekStart" binding:"required"`
	Hours     []float64 `json:"hours" binding:"required,len=7"`
	Notes     string    `json:"notes"`
}

type ReviewTimesheetRequest struct {
	Status     string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	ReviewNote string `json:"reviewNote"`
}
