package services

import (
	"net/http"
	"testing"
	"time"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interviewRequest(at time.Time) *dto.CreateInterviewRequest {
	return &dto.CreateInterviewRequest{
		ScheduledAt:   &at,
		InterviewType: string(models.InterviewTypeVideo),
		Notes:         "Meet the platform team.",
	}
}

func TestCreateInterview_Schedules(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	seeker := env.registerJobSeeker(t, "Jane Doe")
	app := env.apply(t, seeker, env.postJob(t, company, "Backend Engineer").ID)

	at := fixedNow.Add(48 * time.Hour)
	interview, err := env.services.InterviewService.CreateInterview(env.ctx, env.db, company, app.ID, interviewRequest(at))
	require.NoError(t, err)

	assert.Equal(t, app.ID, interview.ApplicationID)
	assert.True(t, at.Equal(interview.ScheduledAt))
	assert.Equal(t, DefaultInterviewLength, interview.Duration)

	sent := env.mail.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, email.TemplateInterviewScheduled, sent[1].Body)

	list, total, err := env.services.InterviewService.ListInterviews(env.ctx, env.db, company, app.ID, dto.PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, interview.ID, list[0].ID)
}

func TestCreateInterview_ScheduleWindow(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	seeker := env.registerJobSeeker(t, "Jane Doe")
	app := env.apply(t, seeker, env.postJob(t, company, "Backend Engineer").ID)

	tests := []struct {
		name string
		at   time.Time
		msg  string
	}{
		{"past", fixedNow.Add(-time.Minute), "Interview cannot be scheduled in the past."},
		{"too soon", fixedNow.Add(30 * time.Minute), "Interview must be scheduled at least 1 hour in advance."},
		{"too far", fixedNow.Add(181 * 24 * time.Hour), "Interview cannot be scheduled more than 6 months in advance."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.InterviewService.CreateInterview(env.ctx, env.db, company, app.ID, interviewRequest(tt.at))
			assert.Equal(t, tt.msg, fieldErrors(t, err)["scheduled_at"])
		})
	}

	t.Run("in person needs location", func(t *testing.T) {
		req := interviewRequest(fixedNow.Add(48 * time.Hour))
		req.InterviewType = string(models.InterviewTypeInPerson)
		_, err := env.services.InterviewService.CreateInterview(env.ctx, env.db, company, app.ID, req)
		assert.Contains(t, fieldErrors(t, err), "location")
	})
}

func TestCreateInterview_Authorization(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	other := env.registerCompany(t, "Globex")
	seeker := env.registerJobSeeker(t, "Jane Doe")
	app := env.apply(t, seeker, env.postJob(t, company, "Backend Engineer").ID)
	req := interviewRequest(fixedNow.Add(48 * time.Hour))

	_, err := env.services.InterviewService.CreateInterview(env.ctx, env.db, seeker, app.ID, req)
	assertAppError(t, err, http.StatusForbidden)

	_, err = env.services.InterviewService.CreateInterview(env.ctx, env.db, other, app.ID, req)
	assertAppError(t, err, http.StatusNotFound)

	_, err = env.services.InterviewService.CreateInterview(env.ctx, env.db, company, "missing", req)
	assertAppError(t, err, http.StatusNotFound)
}

func TestUpdateInterview_PartialAndDelete(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	other := env.registerCompany(t, "Globex")
	seeker := env.registerJobSeeker(t, "Jane Doe")
	app := env.apply(t, seeker, env.postJob(t, company, "Backend Engineer").ID)

	created, err := env.services.InterviewService.CreateInterview(env.ctx, env.db, company, app.ID,
		interviewRequest(fixedNow.Add(3*time.Hour)))
	require.NoError(t, err)

	// Time moves past the interview; editing notes alone must not re-check the schedule.
	env.now = fixedNow.Add(5 * time.Hour)
	duration := 90
	updated, err := env.services.InterviewService.UpdateInterview(env.ctx, env.db, company, created.ID, &dto.UpdateInterviewRequest{
		Notes:    strPtr("Went well."),
		Duration: &duration,
	})
	require.NoError(t, err)
	assert.Equal(t, "Went well.", updated.Notes)
	assert.Equal(t, 90, updated.Duration)
	assert.True(t, created.ScheduledAt.Equal(updated.ScheduledAt))

	past := fixedNow.Add(4 * time.Hour)
	_, err = env.services.InterviewService.UpdateInterview(env.ctx, env.db, company, created.ID, &dto.UpdateInterviewRequest{
		ScheduledAt: &past,
	})
	assert.Contains(t, fieldErrors(t, err), "scheduled_at")

	_, err = env.services.InterviewService.GetInterview(env.ctx, env.db, other, created.ID)
	assertAppError(t, err, http.StatusNotFound)
	assertAppError(t, env.services.InterviewService.DeleteInterview(env.ctx, env.db, other, created.ID), http.StatusNotFound)

	require.NoError(t, env.services.InterviewService.DeleteInterview(env.ctx, env.db, company, created.ID))
	_, err = env.services.InterviewService.GetInterview(env.ctx, env.db, company, created.ID)
	assertAppError(t, err, http.StatusNotFound)
}
