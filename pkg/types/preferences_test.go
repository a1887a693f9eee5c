package types

import "testing"

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.PrimaryColor != "200 98% 39%" {
		t.Fatalf("PrimaryColor = %q", prefs.PrimaryColor)
	}
	if !prefs.ShowRevenue {
		t.Fatal("ShowRevenue should default to true")
	}
	if prefs.TaxRate != 0 {
		t.Fatalf("TaxRate = %v, want 0", prefs.TaxRate)
	}
}
