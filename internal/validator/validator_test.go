package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSalary(t *testing.T) {
	valid := []string{"", "  ", "Negotiable", "COMPETITIVE", "50000", "$50,000", "50.000-70.000", "$40 000 - $60 000", "1e5-2e5", "+100-200", "0-0"}
	for _, s := range valid {
		assert.NoError(t, ValidateSalary(s), "%q should be accepted", s)
	}

	invalid := []string{"abc", "-5", "10-20-30", "50k", "$", "1e5", "NaN", "100-", "NaN-100", "inf-5", "100-Infinity", "0x1p4-5", "1_000-2_000", "abc-100"}
	for _, s := range invalid {
		assert.ErrorIs(t, ValidateSalary(s), ErrInvalidSalary, "%q should be rejected", s)
	}
}

type jobInput struct {
	Title          string   `json:"title" validate:"required,min=5,max=100,job-title"`
	Salary         string   `json:"salary" validate:"salary"`
	EmploymentType string   `json:"employment_type" validate:"omitempty,is-employment-type"`
	Status         string   `json:"status" validate:"omitempty,is-job-status"`
	Skills         []string `json:"skills" validate:"max=20"`
}

type statusInput struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type registerInput struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

func TestValidate_UsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&jobInput{Title: "Dev", Salary: "lots", EmploymentType: "gig", Status: "open"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "title")
	assert.Contains(t, vErr.Errors, "salary")
	assert.Contains(t, vErr.Errors, "employment_type")
	assert.Contains(t, vErr.Errors, "status")
	assert.NotContains(t, vErr.Errors, "Title")
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&jobInput{Title: "Senior Go Engineer (Remote)", Salary: "Negotiable", EmploymentType: "part-time"}))

	err := v.Validate(&jobInput{Title: "Engineer <script>", Salary: ""})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Title contains invalid characters", vErr.Errors["title"])

	assert.NoError(t, v.Validate(&statusInput{Status: "Under Review"}))
	assert.Error(t, v.Validate(&statusInput{Status: "Archived"}))

	assert.NoError(t, v.Validate(&registerInput{Role: "company"}))
	assert.Error(t, v.Validate(&registerInput{Role: "admin"}))
}

func TestValidate_SkillLimit(t *testing.T) {
	skills := make([]string, 21)
	for i := range skills {
		skills[i] = "go"
	}

	err := New().Validate(&jobInput{Title: "Backend Engineer", Skills: skills})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Ensure this field has no more than 20 items", vErr.Errors["skills"])
}

func TestValidationError_Add(t *testing.T) {
	var e ValidationError
	assert.NoError(t, e.OrNil())

	e.Add("deadline", "first")
	e.Add("deadline", "second")
	assert.Equal(t, "first", e.Errors["deadline"])
	assert.Error(t, e.OrNil())
}
