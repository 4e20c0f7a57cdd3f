package models

type User struct {
	BaseModel
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Phone        string   `gorm:"type:varchar(30)" json:"phone,omitempty"`

	// Relations
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID" json:"jobseeker_profile,omitempty"`
	CompanyProfile   *CompanyProfile   `gorm:"foreignKey:UserID" json:"company_profile,omitempty"`
}

type JobSeekerProfile struct {
	BaseModel
	UserID   string `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	User     *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FullName string `gorm:"type:varchar(255)" json:"full_name"`
	Title    string `gorm:"type:varchar(255)" json:"title,omitempty"`
	Location string `gorm:"type:varchar(100)" json:"location,omitempty"`
	About    string `gorm:"type:text" json:"about,omitempty"`
	Resume   string `gorm:"type:varchar(500)" json:"resume,omitempty"`
}

type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	User        *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CompanyName string `gorm:"type:varchar(255);not null" json:"company_name"`
	Website     string `gorm:"type:varchar(255)" json:"website,omitempty"`
	Industry    string `gorm:"type:varchar(100)" json:"industry,omitempty"`
	CompanySize string `gorm:"type:varchar(50)" json:"company_size,omitempty"`
	Location    string `gorm:"type:varchar(100)" json:"location,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
	About       string `gorm:"type:text" json:"about,omitempty"`
}
