package types

// PlanProcedure is one line of a treatment plan. ProcedureName and Cost are
// snapshots taken from the template when the line is added; editing the
// template afterwards does not change them.
type PlanProcedure struct {
	ProcedureID   string  `json:"procedureId"`
	ProcedureName string  `json:"procedureName"`
	Tooth         string  `json:"tooth,omitempty"`
	Cost          float64 `json:"cost"`
	Notes         string  `json:"notes,omitempty"`
}

// TreatmentPlan is an ordered sequence of planned procedures. TotalCost is
// a snapshot of the sum of line costs taken at save time; it is treated as
// authoritative on load and never recomputed.
type TreatmentPlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Procedures  []PlanProcedure `json:"procedures"`
	TotalCost   float64         `json:"totalCost"`
}

// SnapshotTotal recomputes TotalCost from the current procedure lines.
// Called by the plans store on every save.
func (p *TreatmentPlan) SnapshotTotal() {
	var total float64
	for _, proc := range p.Procedures {
		total += proc.Cost
	}
	p.TotalCost = total
}
