package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IncomeRepo:    newIncomeRepository(dbPool),
		ExpenseRepo:   newExpenseRepository(dbPool),
		CategoryRepo:  newCategoryRepository(dbPool),
		SettingsRepo:  newSettingsRepository(dbPool),
		AuditLogRepo:  newAuditLogRepository(dbPool),
		InventoryRepo: newInventoryRepository(dbPool),
		UserRepo:      newUserRepository(dbPool),
	}
}
