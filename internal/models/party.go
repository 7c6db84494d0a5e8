package models

// Party mirrors the parties table. No balance column: party balances are
// derived by replay, never stored.
type Party struct {
	PartyID     string `db:"party_id"`
	Name        string `db:"name"`
	PartyType   string `db:"party_type"` // CUSTOMER or SUPPLIER
	Phone       string `db:"phone"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
