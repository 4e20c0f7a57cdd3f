package dto

import (
	"time"

	"jobtracker_backend/internal/models"
)

type CreateInterviewRequest struct {
	ScheduledAt   *time.Time `json:"scheduled_at" validate:"required"`
	InterviewType string     `json:"interview_type" validate:"required,is-interview-type"`
	Location      string     `json:"location" validate:"max=200"`
	Notes         string     `json:"notes" validate:"max=1000"`
	Duration      *int       `json:"duration" validate:"omitempty,min=15,max=240"`
}

// UpdateInterviewRequest is partial; scheduling rules apply only when scheduled_at is present.
type UpdateInterviewRequest struct {
	ScheduledAt   *time.Time `json:"scheduled_at"`
	InterviewType *string    `json:"interview_type" validate:"omitempty,is-interview-type"`
	Location      *string    `json:"location" validate:"omitempty,max=200"`
	Notes         *string    `json:"notes" validate:"omitempty,max=1000"`
	Duration      *int       `json:"duration" validate:"omitempty,min=15,max=240"`
}

type InterviewResponse struct {
	ID            string               `json:"id"`
	ApplicationID string               `json:"application"`
	ScheduledAt   time.Time            `json:"scheduled_at"`
	InterviewType models.InterviewType `json:"interview_type"`
	Location      string               `json:"location"`
	Notes         string               `json:"notes"`
	Duration      int                  `json:"duration"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func NewInterviewResponse(i *models.Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:            i.ID,
		ApplicationID: i.ApplicationID,
		ScheduledAt:   i.ScheduledAt.UTC(),
		InterviewType: i.InterviewType,
		Location:      i.Location,
		Notes:         i.Notes,
		Duration:      i.Duration,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func NewInterviewResponses(items []models.Interview) []*InterviewResponse {
	out := make([]*InterviewResponse, 0, len(items))
	for i := range items {
		out = append(out, NewInterviewResponse(&items[i]))
	}
	return out
}
