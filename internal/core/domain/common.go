package domain

import "time"

// AuditFields holds standard audit information for mutable domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// UnknownCategoryName is the display label substituted when a record's
// category can no longer be resolved (e.g. the category row was deleted).
const UnknownCategoryName = "Unknown"
