package services

import (
	"net/http"
	"testing"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateJob_DefaultsAndSkills(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")

	req := env.jobRequest("Backend Engineer")
	req.EmploymentType = ""
	req.ExperienceLevel = ""
	req.Skills = []string{" go ", "Go", "Kubernetes"}

	job, err := env.services.JobService.CreateJob(env.ctx, env.db, company, req)
	require.NoError(t, err)

	assert.Equal(t, company.CompanyID, job.CompanyID)
	assert.Equal(t, "Acme Corp", job.CompanyName)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, models.EmploymentTypeFullTime, job.EmploymentType)
	assert.Equal(t, models.ExperienceLevelEntry, job.ExperienceLevel)
	assert.Len(t, job.Skills, 2, "skills are de-duplicated case-insensitively")
	require.NotNil(t, job.ApplicationDeadline)
	assert.Equal(t, *env.deadline(30), *job.ApplicationDeadline)
	assert.Zero(t, job.ApplicationCount)
}

func TestCreateJob_RequiresCompany(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.registerJobSeeker(t, "Jane Doe")

	_, err := env.services.JobService.CreateJob(env.ctx, env.db, seeker, env.jobRequest("Backend Engineer"))
	assertAppError(t, err, http.StatusForbidden)
}

func TestCreateJob_ValidationRules(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")

	tests := []struct {
		name  string
		edit  func(r *dto.CreateJobRequest)
		field string
	}{
		{"title too short", func(r *dto.CreateJobRequest) { r.Title = "Dev" }, "title"},
		{"title charset", func(r *dto.CreateJobRequest) { r.Title = "Engineer <script>" }, "title"},
		{"description too short", func(r *dto.CreateJobRequest) { r.Description = "Too short." }, "description"},
		{"bad salary", func(r *dto.CreateJobRequest) { r.Salary = "lots" }, "salary"},
		{"past deadline", func(r *dto.CreateJobRequest) { r.ApplicationDeadline = env.deadline(-1) }, "application_deadline"},
		{"active without deadline", func(r *dto.CreateJobRequest) { r.ApplicationDeadline = nil }, "application_deadline"},
		{"short skill", func(r *dto.CreateJobRequest) { r.Skills = []string{"C"} }, "skills"},
		{"bad employment type", func(r *dto.CreateJobRequest) { r.EmploymentType = "gig" }, "employment_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := env.jobRequest("Backend Engineer")
			tt.edit(req)

			_, err := env.services.JobService.CreateJob(env.ctx, env.db, company, req)
			assert.Contains(t, fieldErrors(t, err), tt.field)
		})
	}
}

func TestCreateJob_DraftWithoutDeadline(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")

	req := env.jobRequest("Backend Engineer")
	req.Status = string(models.JobStatusDraft)
	req.ApplicationDeadline = nil

	job, err := env.services.JobService.CreateJob(env.ctx, env.db, company, req)
	require.NoError(t, err)
	assert.Nil(t, job.ApplicationDeadline)
}

func TestCreateJob_DeadlineTodayAccepted(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")

	req := env.jobRequest("Backend Engineer")
	req.ApplicationDeadline = env.deadline(0)

	_, err := env.services.JobService.CreateJob(env.ctx, env.db, company, req)
	require.NoError(t, err)
}

func TestUpdateJob_MergesAndReplacesSkills(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	job := env.postJob(t, company, "Backend Engineer")

	skills := []string{"Rust"}
	updated, err := env.services.JobService.UpdateJob(env.ctx, env.db, company, job.ID, &dto.UpdateJobRequest{
		Title:  strPtr("Senior Backend Engineer"),
		Skills: &skills,
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, job.Description, updated.Description)
	assert.Equal(t, []string{"rust"}, updated.Skills, "skill names are stored lowercased")
}

func TestUpdateJob_KeepsSkillsWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	job := env.postJob(t, company, "Backend Engineer")

	updated, err := env.services.JobService.UpdateJob(env.ctx, env.db, company, job.ID, &dto.UpdateJobRequest{
		Location: strPtr("Remote"),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, job.Skills, updated.Skills)
	assert.Equal(t, "Remote", updated.Location)
}

func TestUpdateJob_OtherCompanyGetsNotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCompany(t, "Acme Corp")
	other := env.registerCompany(t, "Globex")
	job := env.postJob(t, owner, "Backend Engineer")

	_, err := env.services.JobService.UpdateJob(env.ctx, env.db, other, job.ID, &dto.UpdateJobRequest{
		Title: strPtr("Hijacked Position"),
	})
	assertAppError(t, err, http.StatusNotFound)
}

func TestUpdateJob_ValidatesMergedRecord(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	job := env.postJob(t, company, "Backend Engineer")

	_, err := env.services.JobService.UpdateJob(env.ctx, env.db, company, job.ID, &dto.UpdateJobRequest{
		ApplicationDeadline: strPtr(""),
	})
	assert.Contains(t, fieldErrors(t, err), "application_deadline")
}

func TestGetJob_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.JobService.GetJob(env.ctx, env.db, "missing")
	assertAppError(t, err, http.StatusNotFound)
}

func TestListJobs_OnlyActiveNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")

	env.postJob(t, company, "First Engineer")
	second := env.postJob(t, company, "Second Engineer")

	draft := env.jobRequest("Draft Engineer")
	draft.Status = string(models.JobStatusDraft)
	_, err := env.services.JobService.CreateJob(env.ctx, env.db, company, draft)
	require.NoError(t, err)

	jobs, total, err := env.services.JobService.ListJobs(env.ctx, env.db, dto.JobListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)

	mine, total, err := env.services.JobService.ListCompanyJobs(env.ctx, env.db, company, dto.PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, mine, 3)
}

func TestSearchJobs_MatchesCompanyNameAndFilters(t *testing.T) {
	env := newTestEnv(t)
	acme := env.registerCompany(t, "Acme Corp")
	globex := env.registerCompany(t, "Globex")

	env.postJob(t, acme, "Backend Engineer")
	remote := env.jobRequest("Frontend Engineer")
	remote.Location = "Remote"
	remote.EmploymentType = string(models.EmploymentTypeContract)
	_, err := env.services.JobService.CreateJob(env.ctx, env.db, globex, remote)
	require.NoError(t, err)

	jobs, total, err := env.services.JobService.SearchJobs(env.ctx, env.db, dto.JobListQuery{Q: "globex"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Frontend Engineer", jobs[0].Title)

	jobs, _, err = env.services.JobService.SearchJobs(env.ctx, env.db, dto.JobListQuery{
		Q:              "engineer",
		EmploymentType: string(models.EmploymentTypeContract),
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Remote", jobs[0].Location)

	_, _, err = env.services.JobService.SearchJobs(env.ctx, env.db, dto.JobListQuery{ExperienceLevel: "guru"})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestListJobs_Pagination(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	for _, title := range []string{"Engineer One", "Engineer Two", "Engineer Three"} {
		env.postJob(t, company, title)
	}

	jobs, total, err := env.services.JobService.ListJobs(env.ctx, env.db, dto.JobListQuery{
		PageQuery: dto.PageQuery{Page: 2, PageSize: 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, jobs, 1)
}

func TestSearchJobs_WildcardsMatchLiterally(t *testing.T) {
	env := newTestEnv(t)
	company := env.registerCompany(t, "Acme Corp")
	env.postJob(t, company, "Backend Engineer")

	literal := env.jobRequest("Platform Engineer")
	literal.Requirements = "Comfortable with snake_case APIs and 100% remote work."
	literal.Location = "Remote_EU"
	_, err := env.services.JobService.CreateJob(env.ctx, env.db, company, literal)
	require.NoError(t, err)

	tests := []struct {
		q    string
		want int64
	}{
		{"%", 1},
		{"_", 1},
		{"100%", 1},
		{"snake_case", 1},
		{"b_ckend", 0},
		{"%%%", 0},
		{"!", 0},
		{"backend", 1},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			_, total, err := env.services.JobService.SearchJobs(env.ctx, env.db, dto.JobListQuery{Q: tt.q})
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}

	_, total, err := env.services.JobService.ListJobs(env.ctx, env.db, dto.JobListQuery{Location: "_"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = env.services.JobService.ListJobs(env.ctx, env.db, dto.JobListQuery{Location: "rem_te"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}
