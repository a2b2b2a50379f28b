package dto

import (
	"github.com/nunsahui/cafeledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest is the payload for updating the café settings
// singleton. Version must carry the version the client last read so stale
// writes are rejected instead of silently overwriting.
type UpdateSettingsRequest struct {
	Version              int64           `json:"version" binding:"min=1"`
	CafeName             string          `json:"cafeName" binding:"required,max=150"`
	Address              string          `json:"address" binding:"max=300"`
	Phone                string          `json:"phone" binding:"max=30"`
	Whatsapp             string          `json:"whatsapp" binding:"max=30"`
	Email                string          `json:"email" binding:"omitempty,email"`
	LogoURL              string          `json:"logoURL" binding:"omitempty,url"`
	ReportRecipientEmail string          `json:"reportRecipientEmail" binding:"omitempty,email"`
	AutoReportsEnabled   bool            `json:"autoReportsEnabled"`
	SalaryPercentage     decimal.Decimal `json:"salaryPercentage"`
}

// SettingsResponse is the API representation of the settings singleton.
type SettingsResponse struct {
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
	SalaryPercentage     decimal.Decimal `json:"salaryPercentage"`
}

// ToSettingsResponse converts the domain settings to its API shape.
func ToSettingsResponse(s domain.CafeSettings) SettingsResponse {
	return SettingsResponse{
		SettingsID:           s.SettingsID,
		Version:              s.Version,
		CafeName:             s.CafeName,
		Address:              s.Address,
		Phone:                s.Phone,
		Whatsapp:             s.Whatsapp,
		Email:                s.Email,
		LogoURL:              s.LogoURL,
		ReportRecipientEmail: s.ReportRecipientEmail,
		AutoReportsEnabled:   s.AutoReportsEnabled,
		SalaryPercentage:     s.SalaryPercentage,
	}
}
