package repositories

import (
	"testing"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedApplicationGraph(t *testing.T, db *gorm.DB) (*models.JobSeekerProfile, *models.Job) {
	t.Helper()

	users := NewUserRepository()
	profiles := NewProfileRepository()

	companyUser := &models.User{Email: "HR@Acme.test", PasswordHash: "x", Role: models.UserRoleCompany}
	require.NoError(t, users.Create(db, companyUser))
	company := &models.CompanyProfile{UserID: companyUser.ID, CompanyName: "Acme Corp"}
	require.NoError(t, profiles.CreateCompanyProfile(db, company))

	seekerUser := &models.User{Email: "jane@example.test", PasswordHash: "x", Role: models.UserRoleJobSeeker}
	require.NoError(t, users.Create(db, seekerUser))
	seeker := &models.JobSeekerProfile{UserID: seekerUser.ID, FullName: "Jane Doe"}
	require.NoError(t, profiles.CreateJobSeekerProfile(db, seeker))

	job := &models.Job{
		CompanyID:    company.ID,
		Title:        "Backend Engineer",
		Description:  "Build services.",
		Requirements: "Go experience.",
		Location:     "Berlin",
		Status:       models.JobStatusActive,
	}
	require.NoError(t, NewJobRepository().Create(db, job))
	return seeker, job
}

func TestApplicationRepository_UniquePerJobSeekerAndJob(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewApplicationRepository()
	seeker, job := seedApplicationGraph(t, db)

	first := &models.Application{JobSeekerID: seeker.ID, JobID: job.ID, Status: models.ApplicationStatusNew}
	require.NoError(t, repo.Create(db, first))

	exists, err := repo.ExistsForJobSeeker(db, seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	second := &models.Application{JobSeekerID: seeker.ID, JobID: job.ID, Status: models.ApplicationStatusNew}
	assert.ErrorIs(t, repo.Create(db, second), ErrApplicationAlreadyExists)
}

func TestApplicationRepository_UpdateStatusMissing(t *testing.T) {
	db := testutil.NewDB(t)

	err := NewApplicationRepository().UpdateStatus(db, "missing", models.ApplicationStatusHired)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestUserRepository_EmailIsCaseInsensitive(t *testing.T) {
	db := testutil.NewDB(t)
	seedApplicationGraph(t, db)
	users := NewUserRepository()

	found, err := users.FindByEmail(db, "hr@acme.TEST")
	require.NoError(t, err)
	assert.Equal(t, "hr@acme.test", found.Email)

	err = users.Create(db, &models.User{Email: "HR@ACME.TEST", PasswordHash: "x", Role: models.UserRoleCompany})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSkillRepository_ReplaceJobSkills(t *testing.T) {
	db := testutil.NewDB(t)
	_, job := seedApplicationGraph(t, db)
	skills := NewSkillRepository()
	jobs := NewJobRepository()

	require.NoError(t, skills.ReplaceJobSkills(db, job.ID, []string{"Go", " go", "SQL"}))
	got, err := jobs.FindByID(db, job.ID)
	require.NoError(t, err)
	require.Len(t, got.Skills, 2)
	assert.Equal(t, "go", got.Skills[0].Name)
	assert.Equal(t, "sql", got.Skills[1].Name)

	require.NoError(t, skills.ReplaceJobSkills(db, job.ID, []string{"Rust"}))
	got, err = jobs.FindByID(db, job.ID)
	require.NoError(t, err)
	require.Len(t, got.Skills, 1)
	assert.Equal(t, "rust", got.Skills[0].Name)

	var total int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&total).Error)
	assert.EqualValues(t, 3, total, "skills outlive their links")
}
