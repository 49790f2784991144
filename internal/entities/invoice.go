package entities

// Invoice is an expense record scoped to exactly one property. The amount
// is kept as the decimal string the database returns; callers coerce it
// before doing arithmetic (display-grade summation, not ledger accounting).
type Invoice struct {
	ID          string `json:"id"`
	PropertyID  string `json:"property_id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Vendor      string `json:"vendor,omitempty"`
	InvoiceDate string `json:"invoice_date"` // YYYY-MM-DD
}
