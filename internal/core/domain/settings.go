package domain

import "github.com/shopspring/decimal"

// CafeSettings is the organization-wide configuration singleton. There is
// exactly one row; it is fetched per request and never cached across requests.
// Version increments on every write so concurrent updates are detected at the
// store rather than silently overwriting each other.
type CafeSettings struct {
	SettingsID           string          `json:"settingsID"`
	Version              int64           `json:"version"`
	CafeName             string          `json:"cafeName"`
	Address              string          `json:"address"`
	Phone                string          `json:"phone"`
	Whatsapp             string          `json:"whatsapp,omitempty"`
	Email                string          `json:"email"`
	LogoURL              string          `json:"logoURL,omitempty"`
	ReportRecipientEmail string          `json:"reportRecipientEmail"`
	AutoReportsEnabled   bool            `json:"autoReportsEnabled"`
	SalaryPercentage     decimal.Decimal `json:"salaryPercentage"` // 0-100
	AuditFields
}
