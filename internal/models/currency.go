package models

// Currency mirrors the currencies table.
type Currency struct {
	Code          string `db:"code"`
	Name          string `db:"name"`
	DecimalPlaces int    `db:"decimal_places"`
	AuditFields
}
