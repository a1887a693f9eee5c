package types

import "testing"

func TestPlanSnapshotTotal(t *testing.T) {
	tests := []struct {
		name string
		plan TreatmentPlan
		want float64
	}{
		{
			name: "empty plan totals zero",
			plan: TreatmentPlan{},
			want: 0,
		},
		{
			name: "sums all line costs",
			plan: TreatmentPlan{Procedures: []PlanProcedure{
				{ProcedureName: "Cleaning", Cost: 80},
				{ProcedureName: "Filling", Cost: 120},
				{ProcedureName: "X-Ray", Cost: 45.50},
			}},
			want: 245.50,
		},
		{
			name: "replaces a stale stored total",
			plan: TreatmentPlan{
				TotalCost:  999,
				Procedures: []PlanProcedure{{ProcedureName: "Cleaning", Cost: 80}},
			},
			want: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.plan.SnapshotTotal()
			if tt.plan.TotalCost != tt.want {
				t.Fatalf("TotalCost = %v, want %v", tt.plan.TotalCost, tt.want)
			}
		})
	}
}
