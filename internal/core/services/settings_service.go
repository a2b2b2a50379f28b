package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	audit        portssvc.AuditSvcFacade
}

// NewSettingsService creates the settings singleton service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, audit: audit}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

var hundred = decimal.NewFromInt(100)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.CafeSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.User) (*domain.CafeSettings, error) {
	if req.SalaryPercentage.IsNegative() || req.SalaryPercentage.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: salary percentage must be between 0 and 100", apperrors.ErrValidation)
	}

	current, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for update: %w", err)
	}

	now := time.Now()
	updated := domain.CafeSettings{
		SettingsID:           current.SettingsID,
		CafeName:             req.CafeName,
		Address:              req.Address,
		Phone:                req.Phone,
		Whatsapp:             req.Whatsapp,
		Email:                req.Email,
		LogoURL:              req.LogoURL,
		ReportRecipientEmail: req.ReportRecipientEmail,
		AutoReportsEnabled:   req.AutoReportsEnabled,
		SalaryPercentage:     req.SalaryPercentage,
		AuditFields: domain.AuditFields{
			CreatedAt:     current.CreatedAt,
			CreatedBy:     current.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.settingsRepo.UpdateSettings(ctx, updated, req.Version); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	updated.Version = req.Version + 1

	if err := s.audit.Append(ctx, domain.AuditSettingsUpdated, actor.Email, map[string]any{
		"cafeName": updated.CafeName,
		"version":  updated.Version,
	}); err != nil {
		s.LogWarn(ctx, "audit append failed", "action", string(domain.AuditSettingsUpdated), "error", err.Error())
	}

	return &updated, nil
}
