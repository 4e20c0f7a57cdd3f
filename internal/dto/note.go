package dto

import (
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

type CreateNoteRequest struct {
	Text string `json:"text" validate:"required,min=2,max=1000"`
}

func (r *CreateNoteRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

type NoteResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application"`
	Text          string    `json:"text"`
	CreatedBy     *string   `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewNoteResponse(n *models.ApplicationNote) *NoteResponse {
	return &NoteResponse{
		ID:            n.ID,
		ApplicationID: n.ApplicationID,
		Text:          n.Text,
		CreatedBy:     n.CreatedBy,
		CreatedAt:     n.CreatedAt,
	}
}

func NewNoteResponses(notes []models.ApplicationNote) []*NoteResponse {
	out := make([]*NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, NewNoteResponse(&notes[i]))
	}
	return out
}

type TimelineEventResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application"`
	EventType     string    `json:"event_type"`
	EventDate     time.Time `json:"event_date"`
	Notes         string    `json:"notes"`
}

func NewTimelineResponses(events []models.ApplicationTimeline) []*TimelineEventResponse {
	out := make([]*TimelineEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &TimelineEventResponse{
			ID:            e.ID,
			ApplicationID: e.ApplicationID,
			EventType:     e.EventType,
			EventDate:     e.EventDate,
			Notes:         e.Notes,
		})
	}
	return out
}
