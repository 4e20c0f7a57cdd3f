package models

type UserRole string
type JobStatus string
type EmploymentType string
type ExperienceLevel string
type ApplicationStatus string
type InterviewType string
type QuestionCategory string

const (
	UserRoleJobSeeker UserRole = "jobseeker"
	UserRoleCompany   UserRole = "company"
	UserRoleAdmin     UserRole = "admin"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"

	EmploymentTypeFullTime   EmploymentType = "full-time"
	EmploymentTypePartTime   EmploymentType = "part-time"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
	EmploymentTypeFreelance  EmploymentType = "freelance"

	ExperienceLevelEntry     ExperienceLevel = "entry"
	ExperienceLevelMid       ExperienceLevel = "mid"
	ExperienceLevelSenior    ExperienceLevel = "senior"
	ExperienceLevelExecutive ExperienceLevel = "executive"

	ApplicationStatusNew         ApplicationStatus = "New"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "Interviewed"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusOffer       ApplicationStatus = "Offer"
	ApplicationStatusHired       ApplicationStatus = "Hired"
	ApplicationStatusWithdrawn   ApplicationStatus = "Withdrawn"

	InterviewTypePhone      InterviewType = "Phone"
	InterviewTypeVideo      InterviewType = "Video"
	InterviewTypeInPerson   InterviewType = "In-Person"
	InterviewTypeAssessment InterviewType = "Assessment"
	InterviewTypeOther      InterviewType = "Other"

	QuestionCategoryGeneral    QuestionCategory = "General"
	QuestionCategoryTechnical  QuestionCategory = "Technical"
	QuestionCategoryBehavioral QuestionCategory = "Behavioral"
	QuestionCategoryOther      QuestionCategory = "Other"
)

var (
	UserRoles        = []UserRole{UserRoleJobSeeker, UserRoleCompany, UserRoleAdmin}
	JobStatuses      = []JobStatus{JobStatusActive, JobStatusClosed, JobStatusDraft}
	EmploymentTypes  = []EmploymentType{EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract, EmploymentTypeInternship, EmploymentTypeFreelance}
	ExperienceLevels = []ExperienceLevel{ExperienceLevelEntry, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelExecutive}

	ApplicationStatuses = []ApplicationStatus{
		ApplicationStatusNew,
		ApplicationStatusUnderReview,
		ApplicationStatusShortlisted,
		ApplicationStatusInterviewed,
		ApplicationStatusRejected,
		ApplicationStatusOffer,
		ApplicationStatusHired,
		ApplicationStatusWithdrawn,
	}

	InterviewTypes = []InterviewType{InterviewTypePhone, InterviewTypeVideo, InterviewTypeInPerson, InterviewTypeAssessment, InterviewTypeOther}

	QuestionCategories = []QuestionCategory{QuestionCategoryGeneral, QuestionCategoryTechnical, QuestionCategoryBehavioral, QuestionCategoryOther}
)

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func (r UserRole) IsValid() bool          { return contains(UserRoles, r) }
func (s JobStatus) IsValid() bool         { return contains(JobStatuses, s) }
func (t EmploymentType) IsValid() bool    { return contains(EmploymentTypes, t) }
func (l ExperienceLevel) IsValid() bool   { return contains(ExperienceLevels, l) }
func (s ApplicationStatus) IsValid() bool { return contains(ApplicationStatuses, s) }
func (t InterviewType) IsValid() bool     { return contains(InterviewTypes, t) }
func (c QuestionCategory) IsValid() bool  { return contains(QuestionCategories, c) }
