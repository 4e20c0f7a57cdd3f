package services

import (
	"strings"
	"testing"
	"time"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduleNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func validInterview() *models.Interview {
	return &models.Interview{
		ScheduledAt:   scheduleNow.Add(48 * time.Hour),
		InterviewType: models.InterviewTypeVideo,
		Duration:      DefaultInterviewLength,
	}
}

func scheduleErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Errors
}

func TestValidateInterviewSchedule_Valid(t *testing.T) {
	assert.NoError(t, ValidateInterviewSchedule(validInterview(), scheduleNow, true))
}

func TestValidateInterviewSchedule_Temporal(t *testing.T) {
	tests := []struct {
		name    string
		at      time.Time
		wantErr string
	}{
		{"in the past", scheduleNow.Add(-time.Minute), "in the past"},
		{"under an hour ahead", scheduleNow.Add(59 * time.Minute), "at least 1 hour"},
		{"exactly one hour ahead", scheduleNow.Add(time.Hour), ""},
		{"exactly 180 days ahead", scheduleNow.Add(180 * 24 * time.Hour), ""},
		{"beyond 180 days", scheduleNow.Add(180*24*time.Hour + time.Second), "6 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := validInterview()
			iv.ScheduledAt = tt.at
			err := ValidateInterviewSchedule(iv, scheduleNow, true)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, scheduleErrors(t, err)["scheduled_at"], tt.wantErr)
		})
	}
}

func TestValidateInterviewSchedule_SkipsTemporalRulesWhenNotRescheduled(t *testing.T) {
	iv := validInterview()
	iv.ScheduledAt = scheduleNow.Add(-24 * time.Hour)
	assert.NoError(t, ValidateInterviewSchedule(iv, scheduleNow, false))
}

func TestValidateInterviewSchedule_Fields(t *testing.T) {
	iv := validInterview()
	iv.Duration = 14
	iv.Notes = strings.Repeat("n", 1001)
	errs := scheduleErrors(t, ValidateInterviewSchedule(iv, scheduleNow, true))
	assert.Contains(t, errs["duration"], "at least 15")
	assert.Contains(t, errs["notes"], "1000")

	iv = validInterview()
	iv.Duration = 241
	assert.Contains(t, scheduleErrors(t, ValidateInterviewSchedule(iv, scheduleNow, true))["duration"], "240")

	iv = validInterview()
	iv.Duration = 240
	iv.Location = strings.Repeat("l", 200)
	assert.NoError(t, ValidateInterviewSchedule(iv, scheduleNow, true))

	iv.Location = strings.Repeat("l", 201)
	assert.Contains(t, scheduleErrors(t, ValidateInterviewSchedule(iv, scheduleNow, true)), "location")
}

func TestValidateInterviewSchedule_InPersonNeedsLocation(t *testing.T) {
	iv := validInterview()
	iv.InterviewType = models.InterviewTypeInPerson
	assert.Equal(t, "Location is required for in-person interviews.",
		scheduleErrors(t, ValidateInterviewSchedule(iv, scheduleNow, true))["location"])

	iv.Location = "HQ, floor 3"
	assert.NoError(t, ValidateInterviewSchedule(iv, scheduleNow, true))
}

func TestValidateInterviewSchedule_UnknownType(t *testing.T) {
	iv := validInterview()
	iv.InterviewType = "Dinner"
	assert.Contains(t, scheduleErrors(t, ValidateInterviewSchedule(iv, scheduleNow, true)), "interview_type")
}
