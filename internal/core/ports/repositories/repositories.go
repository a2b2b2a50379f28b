package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	IncomeRepo    IncomeRepositoryFacade
	ExpenseRepo   ExpenseRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	SettingsRepo  SettingsRepositoryFacade
	AuditLogRepo  AuditLogRepositoryFacade
	InventoryRepo InventoryRepositoryFacade
	UserRepo      UserRepositoryFacade
}
