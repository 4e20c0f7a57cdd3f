package dto

import (
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

const DateLayout = "2006-01-02"

type CreateJobRequest struct {
	Title               string   `json:"title" validate:"required,min=5,max=100,job-title"`
	Description         string   `json:"description" validate:"required,min=50,max=5000"`
	Requirements        string   `json:"requirements" validate:"required,min=20,max=2000"`
	Location            string   `json:"location" validate:"required,min=2,max=100"`
	Salary              string   `json:"salary" validate:"max=100,salary"`
	EmploymentType      string   `json:"employment_type" validate:"omitempty,is-employment-type"`
	ExperienceLevel     string   `json:"experience_level" validate:"omitempty,is-experience-level"`
	Status              string   `json:"status" validate:"omitempty,is-job-status"`
	ApplicationDeadline *string  `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
	Skills              []string `json:"skills" validate:"omitempty,max=20"`
}

func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Requirements = strings.TrimSpace(r.Requirements)
	r.Location = strings.TrimSpace(r.Location)
	r.Salary = strings.TrimSpace(r.Salary)
}

// UpdateJobRequest is a partial update: nil fields are left untouched.
type UpdateJobRequest struct {
	Title               *string   `json:"title" validate:"omitempty,min=5,max=100,job-title"`
	Description         *string   `json:"description" validate:"omitempty,min=50,max=5000"`
	Requirements        *string   `json:"requirements" validate:"omitempty,min=20,max=2000"`
	Location            *string   `json:"location" validate:"omitempty,min=2,max=100"`
	Salary              *string   `json:"salary" validate:"omitempty,max=100,salary"`
	EmploymentType      *string   `json:"employment_type" validate:"omitempty,is-employment-type"`
	ExperienceLevel     *string   `json:"experience_level" validate:"omitempty,is-experience-level"`
	Status              *string   `json:"status" validate:"omitempty,is-job-status"`
	ApplicationDeadline *string   `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
	Skills              *[]string `json:"skills" validate:"omitempty,max=20"`
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func (r *UpdateJobRequest) Normalize() {
	trimPtr(r.Title)
	trimPtr(r.Description)
	trimPtr(r.Requirements)
	trimPtr(r.Location)
	trimPtr(r.Salary)
}

// JobListQuery binds the public listing and search filters.
type JobListQuery struct {
	Q               string `form:"q"`
	Location        string `form:"location"`
	EmploymentType  string `form:"employment_type" validate:"omitempty,is-employment-type"`
	ExperienceLevel string `form:"experience_level" validate:"omitempty,is-experience-level"`
	PageQuery
}

type JobResponse struct {
	ID                  string                 `json:"id"`
	CompanyID           string                 `json:"company_id"`
	CompanyName         string                 `json:"company_name"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Requirements        string                 `json:"requirements"`
	Location            string                 `json:"location"`
	Salary              string                 `json:"salary"`
	EmploymentType      models.EmploymentType  `json:"employment_type"`
	ExperienceLevel     models.ExperienceLevel `json:"experience_level"`
	Status              models.JobStatus       `json:"status"`
	ApplicationDeadline *string                `json:"application_deadline"`
	Skills              []string               `json:"skills"`
	ApplicationCount    int64                  `json:"application_count"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func NewJobResponse(job *models.Job, applicationCount int64) *JobResponse {
	resp := &JobResponse{
		ID:               job.ID,
		CompanyID:        job.CompanyID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Location:         job.Location,
		Salary:           job.Salary,
		EmploymentType:   job.EmploymentType,
		ExperienceLevel:  job.ExperienceLevel,
		Status:           job.Status,
		Skills:           make([]string, 0, len(job.Skills)),
		ApplicationCount: applicationCount,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
	if job.Company != nil {
		resp.CompanyName = job.Company.CompanyName
	}
	if d := job.Deadline(); d != nil {
		s := d.Format(DateLayout)
		resp.ApplicationDeadline = &s
	}
	for _, skill := range job.Skills {
		resp.Skills = append(resp.Skills, skill.Name)
	}
	return resp
}
