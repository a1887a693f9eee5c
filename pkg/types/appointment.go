package types

// Appointment states.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no-show"
)

// validAppointmentStatuses is the set of recognized appointment status values.
var validAppointmentStatuses = map[string]bool{
	AppointmentScheduled: true,
	AppointmentCompleted: true,
	AppointmentCancelled: true,
	AppointmentNoShow:    true,
}

// Appointment is a scheduled visit. PatientName is a snapshot captured when
// the appointment is created; renaming the patient later does not update it.
// Duration is in minutes. Date is a calendar day in "2006-01-02" form and
// Time a clock time such as "14:30".
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	Chair       string `json:"chair,omitempty"`
}

// SetStatus sets the appointment status. Returns ErrInvalidStatus if the
// value is not recognized.
func (a *Appointment) SetStatus(status string) error {
	if !validAppointmentStatuses[status] {
		return ErrInvalidStatus
	}
	a.Status = status
	return nil
}
