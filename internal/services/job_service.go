package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	UpdateJob(ctx context.Context, db *gorm.DB, actor policy.Actor, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	GetJob(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobResponse, error)
	ListJobs(ctx context.Context, db *gorm.DB, query dto.JobListQuery) ([]*dto.JobResponse, int64, error)
	SearchJobs(ctx context.Context, db *gorm.DB, query dto.JobListQuery) ([]*dto.JobResponse, int64, error)
	ListCompanyJobs(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.JobResponse, int64, error)
}

type jobService struct {
	jobRepo   repositories.JobRepository
	skillRepo repositories.SkillRepository
	validator *validator.Validator
	sink      metrics.Sink
	now       Clock
}

func NewJobService(
	jobRepo repositories.JobRepository,
	skillRepo repositories.SkillRepository,
	v *validator.Validator,
	sink metrics.Sink,
	now Clock,
) JobService {
	return &jobService{
		jobRepo:   jobRepo,
		skillRepo: skillRepo,
		validator: v,
		sink:      sink,
		now:       defaultClock(now),
	}
}

func (s *jobService) CreateJob(ctx context.Context, db *gorm.DB, actor policy.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := policy.RequireRole(actor, models.UserRoleCompany); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	job := &models.Job{
		CompanyID:       actor.CompanyID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		Salary:          req.Salary,
		EmploymentType:  models.EmploymentType(req.EmploymentType),
		ExperienceLevel: models.ExperienceLevel(req.ExperienceLevel),
		Status:          models.JobStatus(req.Status),
	}
	applyJobDefaults(job)
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = parseDeadline(*req.ApplicationDeadline)
	}

	if err := s.validateJobRules(job, req.Skills, req.ApplicationDeadline != nil); err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := s.jobRepo.Create(tx, job); err != nil {
		return nil, handleJobError(err)
	}
	if err := s.skillRepo.ReplaceJobSkills(tx, job.ID, req.Skills); err != nil {
		return nil, handleJobError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sink.JobPosted()
	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "company_id", job.CompanyID)
	return s.GetJob(ctx, db, job.ID)
}

// UpdateJob applies the supplied fields and validates the merged record.
// Skills are replaced only when the request carries a skills list.
func (s *jobService) UpdateJob(ctx context.Context, db *gorm.DB, actor policy.Actor, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, asValidationError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	job, err := s.jobRepo.FindByID(tx, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if err := policy.Authorize(actor, policy.Job(job), models.UserRoleCompany, "job"); err != nil {
		return nil, err
	}

	mergeJob(job, req)
	merged := &dto.CreateJobRequest{
		Title:           job.Title,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Location:        job.Location,
		Salary:          job.Salary,
		EmploymentType:  string(job.EmploymentType),
		ExperienceLevel: string(job.ExperienceLevel),
		Status:          string(job.Status),
	}
	if err := s.validator.Validate(merged); err != nil {
		return nil, asValidationError(err)
	}

	var skills []string
	if req.Skills != nil {
		skills = *req.Skills
	}
	if err := s.validateJobRules(job, skills, req.ApplicationDeadline != nil); err != nil {
		return nil, err
	}

	job.Company = nil
	job.Skills = nil
	if err := s.jobRepo.Update(tx, job); err != nil {
		return nil, handleJobError(err)
	}
	if req.Skills != nil {
		if err := s.skillRepo.ReplaceJobSkills(tx, job.ID, *req.Skills); err != nil {
			return nil, handleJobError(err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job updated", "job_id", job.ID)
	return s.GetJob(ctx, db, job.ID)
}

func (s *jobService) GetJob(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	db = db.WithContext(ctx)

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	counts, err := s.jobRepo.CountApplications(db, []string{job.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job, counts[job.ID]), nil
}

// ListJobs returns active jobs only. The free-text query is ignored here; see SearchJobs.
func (s *jobService) ListJobs(ctx context.Context, db *gorm.DB, query dto.JobListQuery) ([]*dto.JobResponse, int64, error) {
	query.Q = ""
	return s.SearchJobs(ctx, db, query)
}

func (s *jobService) SearchJobs(ctx context.Context, db *gorm.DB, query dto.JobListQuery) ([]*dto.JobResponse, int64, error) {
	if err := s.validator.Validate(&query); err != nil {
		return nil, 0, asValidationError(err)
	}
	return s.list(ctx, db, repositories.JobCriteria{
		Status:          models.JobStatusActive,
		Location:        query.Location,
		EmploymentType:  models.EmploymentType(query.EmploymentType),
		ExperienceLevel: models.ExperienceLevel(query.ExperienceLevel),
		Query:           strings.TrimSpace(query.Q),
		Pagination:      repositories.Pagination{Limit: query.Limit(), Offset: query.Offset()},
	})
}

// ListCompanyJobs returns every job of the caller's company, whatever its status.
func (s *jobService) ListCompanyJobs(ctx context.Context, db *gorm.DB, actor policy.Actor, page dto.PageQuery) ([]*dto.JobResponse, int64, error) {
	if err := policy.RequireRole(actor, models.UserRoleCompany); err != nil {
		return nil, 0, err
	}
	return s.list(ctx, db, repositories.JobCriteria{
		CompanyID:  actor.CompanyID,
		Pagination: repositories.Pagination{Limit: page.Limit(), Offset: page.Offset()},
	})
}

func (s *jobService) list(ctx context.Context, db *gorm.DB, criteria repositories.JobCriteria) ([]*dto.JobResponse, int64, error) {
	db = db.WithContext(ctx)

	jobs, total, err := s.jobRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	counts, err := s.jobRepo.CountApplications(db, ids)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	out := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobResponse(&jobs[i], counts[jobs[i].ID]))
	}
	return out, total, nil
}

// validateJobRules enforces the cross-field rules the struct tags cannot express.
// The past-deadline check only runs when the deadline is being written.
func (s *jobService) validateJobRules(job *models.Job, skills []string, deadlineWritten bool) error {
	errs := &validator.ValidationError{}

	if job.Title == job.Description {
		errs.Add("description", "Description cannot be identical to the title.")
	}

	if deadlineWritten && job.DeadlinePassed(s.now()) {
		errs.Add("application_deadline", "Application deadline cannot be in the past.")
	}
	if job.Status == models.JobStatusActive && job.ApplicationDeadline == nil {
		errs.Add("application_deadline", "Active jobs must have an application deadline.")
	}

	for _, skill := range skills {
		n := utf8.RuneCountInString(strings.TrimSpace(skill))
		if n < 2 {
			errs.Add("skills", "Each skill must be at least 2 characters long.")
			break
		}
		if n > 50 {
			errs.Add("skills", "Each skill cannot exceed 50 characters.")
			break
		}
	}

	if err := errs.OrNil(); err != nil {
		return asValidationError(err)
	}
	return nil
}

func applyJobDefaults(job *models.Job) {
	if job.EmploymentType == "" {
		job.EmploymentType = models.EmploymentTypeFullTime
	}
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = models.ExperienceLevelEntry
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
}

func mergeJob(job *models.Job, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.EmploymentType != nil && *req.EmploymentType != "" {
		job.EmploymentType = models.EmploymentType(*req.EmploymentType)
	}
	if req.ExperienceLevel != nil && *req.ExperienceLevel != "" {
		job.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.Status != nil && *req.Status != "" {
		job.Status = models.JobStatus(*req.Status)
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = parseDeadline(*req.ApplicationDeadline)
	}
}

// parseDeadline expects an already validated YYYY-MM-DD string; empty clears the deadline.
func parseDeadline(s string) *datatypes.Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil
	}
	return models.NewDate(t)
}

func handleJobError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrJobNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("job", "Job not found")
	}
	return apperrors.InternalError(err)
}
