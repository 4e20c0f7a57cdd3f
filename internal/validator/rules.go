package validator

import (
	"log"
	"regexp"

	"jobtracker_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var jobTitlePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-.,!?&()/+]+$`)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Only jobseeker and company can be registered; admin is never self-assigned.
	mustRegister("is-user-role", validateUserRole)

	mustRegister("is-job-status", enumRule(models.JobStatus.IsValid))
	mustRegister("is-employment-type", enumRule(models.EmploymentType.IsValid))
	mustRegister("is-experience-level", enumRule(models.ExperienceLevel.IsValid))
	mustRegister("is-application-status", enumRule(models.ApplicationStatus.IsValid))
	mustRegister("is-interview-type", enumRule(models.InterviewType.IsValid))
	mustRegister("is-question-category", enumRule(models.QuestionCategory.IsValid))

	mustRegister("salary", validateSalaryTag)
	mustRegister("job-title", validateJobTitle)
}

// enumRule adapts a typed IsValid method. Empty values pass; 'required' handles those.
func enumRule[T ~string](isValid func(T) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return isValid(T(value))
	}
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleJobSeeker, models.UserRoleCompany:
		return true
	default:
		return false
	}
}

func validateSalaryTag(fl validator.FieldLevel) bool {
	return ValidateSalary(fl.Field().String()) == nil
}

func validateJobTitle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return jobTitlePattern.MatchString(value)
}
