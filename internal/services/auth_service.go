package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/dto"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jwt         *auth.JWTManager
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, jwt *auth.JWTManager) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwt:         jwt,
	}
}

// Register creates the user and its role profile in one transaction.
func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Normalize()

	role := models.UserRole(req.Role)
	switch {
	case role == models.UserRoleJobSeeker && utf8.RuneCountInString(req.FullName) < 2:
		return nil, apperrors.FieldError("full_name", "Full name must be at least 2 characters long.")
	case role == models.UserRoleCompany && utf8.RuneCountInString(req.CompanyName) < 2:
		return nil, apperrors.FieldError("company_name", "Company name must be at least 2 characters long.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := s.userRepo.ExistsByEmail(tx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
	}
	if err := s.userRepo.Create(tx, user); err != nil {
		return nil, handleAuthError(err)
	}

	switch role {
	case models.UserRoleJobSeeker:
		err = s.profileRepo.CreateJobSeekerProfile(tx, &models.JobSeekerProfile{UserID: user.ID, FullName: req.FullName})
	case models.UserRoleCompany:
		err = s.profileRepo.CreateCompanyProfile(tx, &models.CompanyProfile{UserID: user.ID, CompanyName: req.CompanyName})
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "role", user.Role)
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db.WithContext(ctx), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "Failed login attempt", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwt.TTL().Seconds()),
		User:        dto.NewUserResponse(user),
	}, nil
}

func handleAuthError(err error) error {
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		return apperrors.ErrEmailAlreadyExists
	}
	return apperrors.InternalError(err)
}
