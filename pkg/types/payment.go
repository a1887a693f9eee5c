package types

// Payment methods.
const (
	PayCash      = "cash"
	PayCard      = "card"
	PayInsurance = "insurance"
	PayTransfer  = "transfer"
)

// validPaymentMethods is the set of recognized payment method values.
var validPaymentMethods = map[string]bool{
	PayCash:      true,
	PayCard:      true,
	PayInsurance: true,
	PayTransfer:  true,
}

// IsValidPaymentMethod reports whether method is a recognized value.
func IsValidPaymentMethod(method string) bool {
	return validPaymentMethods[method]
}

// Payment is money received from a patient. TreatmentID is an optional weak
// reference to the treatment being paid off. Payments are recorded
// independently of the Paid figure tracked on treatments; the two are not
// reconciled.
type Payment struct {
	ID          string  `json:"id"`
	PatientID   string  `json:"patientId"`
	TreatmentID string  `json:"treatmentId,omitempty"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes"`
}
