package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	audit    portssvc.AuditSvcFacade
}

// NewUserService creates the staff account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, audit: audit}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) AssignRole(ctx context.Context, userID string, role domain.Role, actor domain.User) (*domain.User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	// The last super_admin cannot demote themselves; the system would be left
	// with nobody able to manage users.
	if actor.UserID == userID && actor.Role == domain.RoleSuperAdmin && role != domain.RoleSuperAdmin {
		admins, err := s.countSuperAdmins(ctx)
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, fmt.Errorf("%w: cannot demote the only super_admin", apperrors.ErrValidation)
		}
	}

	target, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for role change: %w", err)
	}
	previousRole := target.Role

	now := time.Now()
	if err := s.userRepo.UpdateUserRole(ctx, userID, role, actor.UserID, now); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}
	target.Role = role
	target.LastUpdatedAt = now
	target.LastUpdatedBy = actor.UserID

	if err := s.audit.Append(ctx, domain.AuditRoleAssigned, actor.Email, map[string]any{
		"targetUserID": userID,
		"targetEmail":  target.Email,
		"previousRole": string(previousRole),
		"newRole":      string(role),
	}); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(domain.AuditRoleAssigned), "error", err.Error())
	}

	return target, nil
}

func (s *userService) countSuperAdmins(ctx context.Context) (int, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}
	count := 0
	for _, u := range users {
		if u.Role == domain.RoleSuperAdmin {
			count++
		}
	}
	return count, nil
}
