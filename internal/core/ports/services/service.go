package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers receive.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Finance   FinanceSvcFacade
	Reporting ReportingSvcFacade
	Inventory InventorySvcFacade
	Settings  SettingsSvcFacade
	Audit     AuditSvcFacade
}
