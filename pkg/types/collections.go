package types

// Collection keys. Each named collection is persisted as a single blob
// under its key in the backing key/value space.
const (
	KeyPatients     = "chairside_patients"
	KeyTreatments   = "chairside_treatments"
	KeyAppointments = "chairside_appointments"
	KeyPayments     = "chairside_payments"
	KeyPreferences  = "chairside_preferences"
	KeyProcedures   = "chairside_procedures"
	KeyPlans        = "chairside_treatment_plans"
)

// KeyPassword holds the obfuscated access-gate password. It is not a
// collection key and is excluded from ClearAll.
const KeyPassword = "chairside_password"

// CollectionKeys lists every collection key in storage order.
var CollectionKeys = []string{
	KeyPatients,
	KeyTreatments,
	KeyAppointments,
	KeyPayments,
	KeyPreferences,
	KeyProcedures,
	KeyPlans,
}
