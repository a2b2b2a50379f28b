package services

import (
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dispatcher portssvc.NotificationDispatcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first since most other services append to it.
	container.Audit = NewAuditService(repos.AuditLogRepo)

	container.Auth = NewAuthService(repos.UserRepo, container.Audit, cfg)
	container.User = NewUserService(repos.UserRepo, container.Audit)
	container.Finance = NewFinanceService(repos.IncomeRepo, repos.ExpenseRepo, repos.CategoryRepo, container.Audit)
	container.Settings = NewSettingsService(repos.SettingsRepo, container.Audit)
	container.Inventory = NewInventoryService(repos.InventoryRepo, container.Audit)
	container.Reporting = NewReportingService(
		repos.IncomeRepo,
		repos.ExpenseRepo,
		repos.UserRepo,
		repos.InventoryRepo,
		repos.SettingsRepo,
		container.Audit,
		dispatcher,
	)

	return container
}
