package types

// ProcedureTemplate is a reusable procedure definition with a default cost.
// Templates are configuration rather than practice data: they are excluded
// from the full backup document. Duration is in minutes.
type ProcedureTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code,omitempty"`
	DefaultCost float64 `json:"defaultCost"`
	Duration    int     `json:"duration,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}
