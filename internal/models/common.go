package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&JobSeekerProfile{},
		&CompanyProfile{},
		&Skill{},
		&Job{},
		&Application{},
		&ApplicationNote{},
		&Interview{},
		&ApplicationTimeline{},
		&PracticeQuestion{},
		&PracticeAnswer{},
	}
}
