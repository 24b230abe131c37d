package models

// TaxResult is the answer from the external tax resolution service
type TaxResult struct {
	TaxAmount float64 `json:"tax_amount"`
	TaxRate   float64 `json:"tax_rate"`
	ZoneName  string  `json:"zone_name,omitempty"`
}
