package domain

import "time"

// AuditFields holds the audit trail embedded in every domain entity.
// CreatedBy and LastUpdatedBy carry the acting user's UUID.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}
