package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/dto"
	"github.com/nunsahui/cafeledger/internal/platform/config"
	"github.com/nunsahui/cafeledger/internal/utils"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	audit    portssvc.AuditSvcFacade
	cfg      *config.Config
}

// NewAuthService creates the registration/login service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, audit portssvc.AuditSvcFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, audit: audit, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	// The first account bootstraps the system and gets full control.
	role := domain.RoleFinanceOfficer
	if count == 0 {
		role = domain.RoleSuperAdmin
	}

	now := time.Now()
	user := domain.User{
		UserID:   uuid.NewString(),
		Email:    email,
		FullName: req.FullName,
		Role:     role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, hash); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.audit.Append(ctx, domain.AuditUserCreated, user.Email, map[string]any{
		"userID": user.UserID,
		"role":   string(user.Role),
	}); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(domain.AuditUserCreated), "error", err.Error())
	}

	s.LogInfo(ctx, "user registered", "userID", user.UserID, "role", string(user.Role))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := s.userRepo.FindPasswordHash(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, hash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	token, err := utils.GenerateAccessToken(*user, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.cfg.JWTExpiryDuration.Seconds()),
		User:      dto.ToUserResponse(*user),
	}, nil
}
