package domain

import "time"

// AuditActionType enumerates the actions recorded in the audit log.
type AuditActionType string

const (
	AuditIncomeAdded        AuditActionType = "income_added"
	AuditExpenseAdded       AuditActionType = "expense_added"
	AuditSettingsUpdated    AuditActionType = "settings_updated"
	AuditRoleAssigned       AuditActionType = "role_assigned"
	AuditUserCreated        AuditActionType = "user_created"
	AuditReportEmailed      AuditActionType = "report_emailed"
	AuditInventoryItemAdded AuditActionType = "inventory_item_added"
	AuditStockRecorded      AuditActionType = "stock_recorded"
)

// AuditLogEntry is an append-only accountability record. The application
// never updates or deletes entries.
type AuditLogEntry struct {
	EntryID    string          `json:"entryID"`
	ActionType AuditActionType `json:"actionType"`
	UserEmail  string          `json:"userEmail"`
	Details    map[string]any  `json:"details"`
	CreatedAt  time.Time       `json:"createdAt"`
}
