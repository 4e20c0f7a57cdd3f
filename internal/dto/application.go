package dto

import (
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

type CreateApplicationRequest struct {
	JobID       string `json:"job" validate:"required"`
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
	Resume      string `json:"resume" validate:"max=500"`
}

func (r *CreateApplicationRequest) Normalize() {
	r.JobID = strings.TrimSpace(r.JobID)
	r.CoverLetter = strings.TrimSpace(r.CoverLetter)
	r.Resume = strings.TrimSpace(r.Resume)
}

// UpdateApplicationRequest edits the job seeker's own content. Status is not accepted here.
type UpdateApplicationRequest struct {
	CoverLetter *string `json:"cover_letter" validate:"omitempty,max=5000"`
	Resume      *string `json:"resume" validate:"omitempty,max=500"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	JobID         string                   `json:"job"`
	JobTitle      string                   `json:"job_title"`
	CompanyName   string                   `json:"company_name"`
	JobSeekerID   string                   `json:"jobseeker"`
	JobSeekerName string                   `json:"jobseeker_name"`
	CoverLetter   string                   `json:"cover_letter"`
	Resume        string                   `json:"resume"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		JobSeekerID: app.JobSeekerID,
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
	if app.Job != nil {
		resp.JobTitle = app.Job.Title
		if app.Job.Company != nil {
			resp.CompanyName = app.Job.Company.CompanyName
		}
	}
	if app.JobSeeker != nil {
		resp.JobSeekerName = app.JobSeeker.FullName
	}
	return resp
}

func NewApplicationResponses(apps []models.Application) []*ApplicationResponse {
	out := make([]*ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
