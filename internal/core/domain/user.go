package domain

import "time"

// Role is the application-level role assigned to a user. Roles are a flat
// enumeration; what a role may do is defined by the capability table below,
// not by any ordering between roles.
type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleAdmin          Role = "admin"
	RoleFinanceOfficer Role = "finance_officer"
)

// Capability names a discrete permission checked at the request boundary.
type Capability string

const (
	CapManageUsers     Capability = "manage_users"
	CapManageSettings  Capability = "manage_settings"
	CapRecordIncome    Capability = "record_income"
	CapRecordExpense   Capability = "record_expense"
	CapViewReports     Capability = "view_reports"
	CapManageInventory Capability = "manage_inventory"
	CapViewAuditLog    Capability = "view_audit_log"
	CapSendReports     Capability = "send_reports"
)

// roleCapabilities is the explicit permission predicate table. A role grants
// exactly the capabilities listed here and nothing else.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleSuperAdmin: {
		CapManageUsers:     true,
		CapManageSettings:  true,
		CapRecordIncome:    true,
		CapRecordExpense:   true,
		CapViewReports:     true,
		CapManageInventory: true,
		CapViewAuditLog:    true,
		CapSendReports:     true,
	},
	RoleAdmin: {
		CapManageSettings:  true,
		CapRecordIncome:    true,
		CapRecordExpense:   true,
		CapViewReports:     true,
		CapManageInventory: true,
		CapViewAuditLog:    true,
		CapSendReports:     true,
	},
	RoleFinanceOfficer: {
		CapRecordIncome:  true,
		CapRecordExpense: true,
		CapViewReports:   true,
	},
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// IsValid reports whether the role is one of the known enumerated roles.
func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// User represents a staff member of the café.
type User struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// DisplayName returns the full name, falling back when the profile has none.
func (u User) DisplayName() string {
	if u.FullName == "" {
		return "No name"
	}
	return u.FullName
}
