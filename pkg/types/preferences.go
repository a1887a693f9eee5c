package types

// UserPreferences is the singleton settings record. Reads merge the stored
// blob over DefaultPreferences so fields missing from older blobs fall back
// to their defaults instead of zero values.
type UserPreferences struct {
	PrimaryColor  string  `json:"primaryColor"`
	ShowRevenue   bool    `json:"showRevenue"`
	TaxRate       float64 `json:"taxRate"`
	ClinicName    string  `json:"clinicName,omitempty"`
	ClinicAddress string  `json:"clinicAddress,omitempty"`
	ClinicPhone   string  `json:"clinicPhone,omitempty"`
	ClinicEmail   string  `json:"clinicEmail,omitempty"`
}

// DefaultPreferences returns the preference values used before anything has
// been saved. The color is an HSL triple consumed by the UI theme.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		PrimaryColor: "200 98% 39%",
		ShowRevenue:  true,
		TaxRate:      0,
	}
}
