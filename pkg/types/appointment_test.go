package types

import (
	"errors"
	"testing"
)

func TestAppointmentSetStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "scheduled is valid", status: AppointmentScheduled, wantErr: nil},
		{name: "completed is valid", status: AppointmentCompleted, wantErr: nil},
		{name: "cancelled is valid", status: AppointmentCancelled, wantErr: nil},
		{name: "no-show is valid", status: AppointmentNoShow, wantErr: nil},
		{name: "unknown value is rejected", status: "pending", wantErr: ErrInvalidStatus},
		{name: "empty value is rejected", status: "", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Appointment
			err := a.SetStatus(tt.status)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				if a.Status != tt.status {
					t.Fatalf("Status = %q, want %q", a.Status, tt.status)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
