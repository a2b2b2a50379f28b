package repositories

import (
	"context"
	"time"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// SettingsRepositoryFacade manages the CafeSettings singleton row.
type SettingsRepositoryFacade interface {
	// GetSettings retrieves the singleton settings row.
	GetSettings(ctx context.Context) (*domain.CafeSettings, error)

	// UpdateSettings writes new settings if expectedVersion still matches the
	// stored row, bumping the version. Returns apperrors.ErrVersionConflict on
	// a stale write.
	UpdateSettings(ctx context.Context, settings domain.CafeSettings, expectedVersion int64) error
}

// AuditLogRepositoryFacade is the append-only audit trail. Entries are never
// updated or deleted by the application.
type AuditLogRepositoryFacade interface {
	// AppendEntry persists a new audit entry.
	AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error

	// ListEntries retrieves entries in reverse-chronological order. A
	// non-empty search term is matched as a substring against the action type
	// and the actor's email.
	ListEntries(ctx context.Context, search string, limit int) ([]domain.AuditLogEntry, error)
}

// UserReader defines read operations for user data.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user with their password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// UpdateUserRole reassigns a user's role.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedBy string, now time.Time) error

	// FindPasswordHash retrieves the stored bcrypt hash for login checks.
	FindPasswordHash(ctx context.Context, email string) (string, error)
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
