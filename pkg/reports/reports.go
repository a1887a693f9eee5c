// Package reports computes derived figures from the raw collections:
// dashboard statistics, per-patient balances, and invoice totals. Every
// function is pure and recomputes from scratch on each call; nothing here
// owns persistent state or caches.
package reports

import (
	"time"

	"github.com/praxos/chairside/pkg/types"
)

// DayFormat is the calendar-day form used by appointment and payment dates.
const DayFormat = "2006-01-02"

// DashboardStats is the practice overview for a reference instant.
type DashboardStats struct {
	TotalPatients        int
	NewPatientsThisMonth int
	TodayAppointments    int
	MonthRevenue         float64
	LastMonthRevenue     float64
	PendingPayments      float64
	CompletedTreatments  int
}

// Stats computes the dashboard figures as of now. "This month" is the
// calendar month containing now; "last month" the one immediately before
// it. Records with unparseable dates are skipped, not errors.
func Stats(patients []types.Patient, treatments []types.Treatment,
	appointments []types.Appointment, payments []types.Payment,
	now time.Time) DashboardStats {

	stats := DashboardStats{TotalPatients: len(patients)}

	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := curYear, curMonth-1
	if prevMonth < time.January {
		prevMonth = time.December
		prevYear--
	}

	for _, p := range patients {
		if created, ok := parseWhen(p.CreatedAt); ok &&
			created.Year() == curYear && created.Month() == curMonth {
			stats.NewPatientsThisMonth++
		}
	}

	today := now.Format(DayFormat)
	for _, a := range appointments {
		if a.Date == today {
			stats.TodayAppointments++
		}
	}

	for _, p := range payments {
		when, ok := parseWhen(p.Date)
		if !ok {
			continue
		}
		switch {
		case when.Year() == curYear && when.Month() == curMonth:
			stats.MonthRevenue += p.Amount
		case when.Year() == prevYear && when.Month() == prevMonth:
			stats.LastMonthRevenue += p.Amount
		}
	}

	for _, t := range treatments {
		if t.Status != types.TreatmentCompleted {
			continue
		}
		stats.CompletedTreatments++
		stats.PendingPayments += t.Outstanding()
	}

	return stats
}

// RevenueGrowth returns the month-over-month revenue change as a
// percentage. Zero when last month had no revenue, so a first month of
// income never reads as infinite growth.
func (s DashboardStats) RevenueGrowth() float64 {
	if s.LastMonthRevenue == 0 {
		return 0
	}
	return (s.MonthRevenue - s.LastMonthRevenue) / s.LastMonthRevenue * 100
}

// AverageRevenuePerPatient returns this month's revenue spread over the
// whole patient roster. Zero when there are no patients.
func (s DashboardStats) AverageRevenuePerPatient() float64 {
	if s.TotalPatients == 0 {
		return 0
	}
	return s.MonthRevenue / float64(s.TotalPatients)
}

// Balance is a patient's treatment-ledger position: cost billed against
// the paid amounts tracked on the treatments themselves. This is a separate
// figure from the payments collection and the two are deliberately not
// reconciled; callers expose both.
type Balance struct {
	TotalCost float64
	TotalPaid float64
	Balance   float64
}

// PatientBalance sums one patient's treatments. The caller supplies the
// already-filtered slice.
func PatientBalance(treatments []types.Treatment) Balance {
	var b Balance
	for _, t := range treatments {
		b.TotalCost += t.Cost
		b.TotalPaid += t.Paid
	}
	b.Balance = b.TotalCost - b.TotalPaid
	return b
}

// Invoice is the computed totals block of a printable invoice.
type Invoice struct {
	Subtotal   float64
	TaxRate    float64
	Tax        float64
	Total      float64
	AmountPaid float64
	Balance    float64
}

// ComputeInvoice totals the given treatments and payments under taxRate
// (a percentage, e.g. 10 for 10%). Balance goes negative on overpayment
// and is never clamped.
func ComputeInvoice(treatments []types.Treatment, payments []types.Payment, taxRate float64) Invoice {
	inv := Invoice{TaxRate: taxRate}
	for _, t := range treatments {
		inv.Subtotal += t.Cost
	}
	for _, p := range payments {
		inv.AmountPaid += p.Amount
	}
	inv.Tax = inv.Subtotal * (taxRate / 100)
	inv.Total = inv.Subtotal + inv.Tax
	inv.Balance = inv.Total - inv.AmountPaid
	return inv
}

// PlanTotal sums a plan's procedure line costs. The plans store calls this
// indirectly at save time via SnapshotTotal; a loaded plan's stored
// TotalCost stays authoritative and is not recomputed here.
func PlanTotal(procedures []types.PlanProcedure) float64 {
	var total float64
	for _, proc := range procedures {
		total += proc.Cost
	}
	return total
}

// parseWhen accepts the two timestamp forms in the store: RFC 3339 for
// creation timestamps and plain calendar days for payment and appointment
// dates.
func parseWhen(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DayFormat, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
