package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates the audit trail service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) Append(ctx context.Context, action domain.AuditActionType, userEmail string, details map[string]any) error {
	entry := domain.AuditLogEntry{
		EntryID:    uuid.NewString(),
		ActionType: action,
		UserEmail:  userEmail,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.AppendEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (s *auditService) List(ctx context.Context, search string, limit int) ([]domain.AuditLogEntry, error) {
	entries, err := s.auditRepo.ListEntries(ctx, search, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
