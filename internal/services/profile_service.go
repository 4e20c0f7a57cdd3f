package services

import (
	"context"
	"errors"

	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/policy"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	// ResolveActor loads the profile matching role. A missing profile is ErrProfileNotFound.
	ResolveActor(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) (policy.Actor, error)
	GetMyProfile(ctx context.Context, db *gorm.DB, actor policy.Actor) (*dto.ProfileResponse, error)
	GetCompany(ctx context.Context, db *gorm.DB, companyID string) (*models.CompanyProfile, error)
}

type profileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *profileService) ResolveActor(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) (policy.Actor, error) {
	db = db.WithContext(ctx)
	actor := policy.Actor{UserID: userID, Role: role}

	switch role {
	case models.UserRoleJobSeeker:
		profile, err := s.profileRepo.FindJobSeekerByUserID(db, userID)
		if err != nil {
			return actor, handleProfileError(err)
		}
		actor.JobSeekerID = profile.ID
	case models.UserRoleCompany:
		profile, err := s.profileRepo.FindCompanyByUserID(db, userID)
		if err != nil {
			return actor, handleProfileError(err)
		}
		actor.CompanyID = profile.ID
	}
	return actor, nil
}

func (s *profileService) GetMyProfile(ctx context.Context, db *gorm.DB, actor policy.Actor) (*dto.ProfileResponse, error) {
	db = db.WithContext(ctx)

	user, err := s.userRepo.FindByID(db, actor.UserID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	resp := &dto.ProfileResponse{User: dto.NewUserResponse(user)}
	switch actor.Role {
	case models.UserRoleJobSeeker:
		profile, err := s.profileRepo.FindJobSeekerByUserID(db, actor.UserID)
		if err != nil {
			return nil, handleProfileError(err)
		}
		resp.JobSeekerProfile = profile
	case models.UserRoleCompany:
		profile, err := s.profileRepo.FindCompanyByUserID(db, actor.UserID)
		if err != nil {
			return nil, handleProfileError(err)
		}
		resp.CompanyProfile = profile
	}
	return resp, nil
}

func (s *profileService) GetCompany(ctx context.Context, db *gorm.DB, companyID string) (*models.CompanyProfile, error) {
	company, err := s.profileRepo.FindCompanyByID(db.WithContext(ctx), companyID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return company, nil
}

func handleProfileError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.ErrProfileNotFound
	case errors.Is(err, repositories.ErrCompanyNotFound):
		return apperrors.NotFound("company", "Company not found")
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.NotFound("user", "User not found")
	}
	return apperrors.InternalError(err)
}
