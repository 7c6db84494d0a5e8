package domain

// PartyType tags a counterpart as a customer or a supplier.
type PartyType string

const (
	Customer PartyType = "CUSTOMER"
	Supplier PartyType = "SUPPLIER"
)

// Party represents a customer or supplier counterpart. Its balance is derived
// by replaying normalized ledger entries, never stored as an independently
// mutable field.
type Party struct {
	PartyID     string    `json:"partyID"` // Primary Key (UUID)
	Name        string    `json:"name"`
	PartyType   PartyType `json:"partyType"` // CUSTOMER or SUPPLIER
	Phone       string    `json:"phone"`     // Nullable
	IsActive    bool      `json:"isActive"`
	AuditFields           // Embed CreatedAt, CreatedBy, etc.
}
