package structs

import "time"

type ScheduleInterviewRequest struct {
	CandidateID   string    `json:"candidateId" binding:"required"`
	RequirementID string    `json:"requirementId" binding:"required"`
	Round         string    `json:"round" binding:"required"`
	ScheduledAt   time.Time `json:"scheduledAt" binding:"required"`
	Mode          string    `json:"mode" binding:"required,oneof=PHONE VIDEO ONSITE"`
}

type UpdateInterviewRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt"`
	Mode        string     `json:"mode"`
	Status      string     `json:"status"`
	Feedback    string     `json:"feedback"`
}
