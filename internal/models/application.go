package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Application struct {
	BaseModel
	JobSeekerID string            `gorm:"column:jobseeker_id;type:varchar(36);not null;uniqueIndex:idx_application_jobseeker_job" json:"jobseeker_id"`
	JobSeeker   *JobSeekerProfile `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"jobseeker,omitempty"`
	JobID       string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_jobseeker_job;index" json:"job_id"`
	Job         *Job              `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Resume      string            `gorm:"type:varchar(500)" json:"resume"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'New';index" json:"status"`

	Notes      []ApplicationNote     `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
	Interviews []Interview           `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
	Timeline   []ApplicationTimeline `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
}

// CompanyID returns the owning company of the application's job; the job must be loaded.
func (a *Application) CompanyID() string {
	if a.Job == nil {
		return ""
	}
	return a.Job.CompanyID
}

type ApplicationNote struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ApplicationID string    `gorm:"type:varchar(36);not null;index" json:"application_id"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	CreatedBy     *string   `gorm:"type:varchar(36)" json:"created_by"`
	Creator       *User     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

func (n *ApplicationNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

type Interview struct {
	BaseModel
	ApplicationID string        `gorm:"type:varchar(36);not null;index" json:"application_id"`
	Application   *Application  `gorm:"foreignKey:ApplicationID" json:"-"`
	ScheduledAt   time.Time     `gorm:"not null;index" json:"scheduled_at"`
	InterviewType InterviewType `gorm:"type:varchar(20);not null" json:"interview_type"`
	Location      string        `gorm:"type:varchar(200)" json:"location"`
	Notes         string        `gorm:"type:text" json:"notes"`
	Duration      int           `gorm:"not null;default:60" json:"duration"`
}

type ApplicationTimeline struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ApplicationID string    `gorm:"type:varchar(36);not null;index" json:"application_id"`
	EventType     string    `gorm:"type:varchar(50);not null" json:"event_type"`
	EventDate     time.Time `gorm:"not null;index" json:"event_date"`
	Notes         string    `gorm:"type:text" json:"notes"`
}

func (e *ApplicationTimeline) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.EventDate.IsZero() {
		e.EventDate = time.Now().UTC()
	}
	return nil
}
