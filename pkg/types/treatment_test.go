package types

import (
	"errors"
	"testing"
)

func TestTreatmentSetStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "completed is valid", status: TreatmentCompleted, wantErr: nil},
		{name: "planned is valid", status: TreatmentPlanned, wantErr: nil},
		{name: "ongoing is valid", status: TreatmentOngoing, wantErr: nil},
		{name: "unknown value is rejected", status: "cancelled", wantErr: ErrInvalidStatus},
		{name: "empty value is rejected", status: "", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Treatment
			err := tr.SetStatus(tt.status)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				if tr.Status != tt.status {
					t.Fatalf("Status = %q, want %q", tr.Status, tt.status)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tr.Status != "" {
				t.Fatalf("Status changed to %q on rejected value", tr.Status)
			}
		})
	}
}

func TestTreatmentOutstanding(t *testing.T) {
	tests := []struct {
		name string
		cost float64
		paid float64
		want float64
	}{
		{name: "unpaid", cost: 120, paid: 0, want: 120},
		{name: "partially paid", cost: 120, paid: 50, want: 70},
		{name: "fully paid", cost: 120, paid: 120, want: 0},
		{name: "overpaid goes negative", cost: 120, paid: 150, want: -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Treatment{Cost: tt.cost, Paid: tt.paid}
			if got := tr.Outstanding(); got != tt.want {
				t.Fatalf("Outstanding() = %v, want %v", got, tt.want)
			}
		})
	}
}
