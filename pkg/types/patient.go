package types

// Patient is a person record. CreatedAt is assigned once when the record is
// added and never changes afterwards; LastVisit is maintained by callers
// when treatments are recorded.
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	EmergencyPhone   string `json:"emergencyPhone,omitempty"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	Insurance        string `json:"insurance,omitempty"`
	CreatedAt        string `json:"createdAt"`
	LastVisit        string `json:"lastVisit,omitempty"`
}
