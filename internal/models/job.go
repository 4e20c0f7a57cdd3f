package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CompanyID           string          `gorm:"type:varchar(36);not null;index" json:"company_id"`
	Company             *CompanyProfile `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Title               string          `gorm:"type:varchar(100);not null" json:"title"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	Requirements        string          `gorm:"type:text;not null" json:"requirements"`
	Location            string          `gorm:"type:varchar(100);not null" json:"location"`
	Salary              string          `gorm:"type:varchar(100)" json:"salary"`
	EmploymentType      EmploymentType  `gorm:"type:varchar(20);not null;default:'full-time'" json:"employment_type"`
	ExperienceLevel     ExperienceLevel `gorm:"type:varchar(20);not null;default:'entry'" json:"experience_level"`
	Status              JobStatus       `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	ApplicationDeadline *datatypes.Date `json:"application_deadline"`

	Skills       []Skill       `gorm:"many2many:job_skills;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

// Deadline returns the application deadline as a UTC midnight time, or nil.
func (j *Job) Deadline() *time.Time {
	if j.ApplicationDeadline == nil {
		return nil
	}
	t := time.Time(*j.ApplicationDeadline)
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// DeadlinePassed reports whether the deadline lies before the UTC date of now.
func (j *Job) DeadlinePassed(now time.Time) bool {
	d := j.Deadline()
	if d == nil {
		return false
	}
	return d.Before(Today(now))
}

// Today truncates now to its UTC calendar date.
func Today(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDate converts a calendar date into the stored deadline type.
func NewDate(t time.Time) *datatypes.Date {
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d
}

type Skill struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// JobSkill is the join row between jobs and skills.
type JobSkill struct {
	JobID     string    `gorm:"type:varchar(36);primaryKey"`
	SkillID   string    `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time
}

func (JobSkill) TableName() string {
	return "job_skills"
}
