package models

// PracticeQuestion is a shared interview question job seekers can rehearse against.
type PracticeQuestion struct {
	BaseModel
	QuestionText string           `gorm:"type:text;not null" json:"question_text"`
	Category     QuestionCategory `gorm:"type:varchar(20);not null;default:'General';index" json:"category"`

	Answers []PracticeAnswer `gorm:"foreignKey:QuestionID" json:"-"`
}

// PracticeAnswer is private to the job seeker who wrote it. Score is set on submit and never recomputed.
type PracticeAnswer struct {
	BaseModel
	QuestionID  string            `gorm:"type:varchar(36);not null;index" json:"question_id"`
	Question    *PracticeQuestion `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
	JobSeekerID string            `gorm:"column:jobseeker_id;type:varchar(36);not null;index" json:"jobseeker_id"`
	JobSeeker   *JobSeekerProfile `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"-"`
	AnswerText  string            `gorm:"type:text;not null" json:"answer_text"`
	Score       int               `gorm:"not null;default:0" json:"score"`
}
