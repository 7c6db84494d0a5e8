package domain

// Currency holds the display metadata for a currency. DecimalPlaces drives
// formatting at the display boundary only; stored precision is never reduced.
type Currency struct {
	Code          string `json:"code"` // ISO 4217 style code, e.g. KWD
	Name          string `json:"name"`
	DecimalPlaces int    `json:"decimalPlaces"`
	AuditFields
}
