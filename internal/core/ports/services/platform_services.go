package services

import (
	"context"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/nunsahui/cafeledger/internal/dto"
)

// AuthSvcFacade handles registration and login.
type AuthSvcFacade interface {
	// Register creates a new user. The first registered user becomes
	// super_admin; later ones default to finance_officer.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// UserSvcFacade manages staff accounts and roles.
type UserSvcFacade interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// AssignRole reassigns a user's role and writes an audit entry.
	AssignRole(ctx context.Context, userID string, role domain.Role, actor domain.User) (*domain.User, error)
}

// SettingsSvcFacade manages the CafeSettings singleton.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.CafeSettings, error)

	// UpdateSettings writes new settings against the expected version and
	// always records an audit entry on success.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.User) (*domain.CafeSettings, error)
}

// AuditSvcFacade exposes the append-only audit trail.
type AuditSvcFacade interface {
	// Append records an action. Failures are reported to the caller but must
	// never roll back the action being audited.
	Append(ctx context.Context, action domain.AuditActionType, userEmail string, details map[string]any) error

	// List returns entries newest first, optionally filtered by a substring
	// over action type and actor email.
	List(ctx context.Context, search string, limit int) ([]domain.AuditLogEntry, error)
}

// InventorySvcFacade manages stock items and movements.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, actor domain.User) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)

	// RecordTransaction records a purchase or sale. Sales exceeding the
	// current stock are rejected with no state change.
	RecordTransaction(ctx context.Context, itemID string, req dto.CreateStockTransactionRequest, actor domain.User) (*domain.InventoryTransaction, error)

	ListTransactions(ctx context.Context, itemID string) ([]domain.InventoryTransaction, error)
}
