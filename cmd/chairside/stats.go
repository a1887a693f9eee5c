// Dashboard statistics command.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/reports"
	"github.com/praxos/chairside/pkg/types"
)

var statsPassword string

// statsOutput is the JSON shape of the stats command. Revenue fields are
// pointers so they can be omitted entirely when hidden.
type statsOutput struct {
	TotalPatients        int      `json:"totalPatients"`
	NewPatientsThisMonth int      `json:"newPatientsThisMonth"`
	TodayAppointments    int      `json:"todayAppointments"`
	CompletedTreatments  int      `json:"completedTreatments"`
	MonthRevenue         *float64 `json:"monthRevenue,omitempty"`
	LastMonthRevenue     *float64 `json:"lastMonthRevenue,omitempty"`
	RevenueGrowth        *float64 `json:"revenueGrowth,omitempty"`
	PendingPayments      *float64 `json:"pendingPayments,omitempty"`
	AvgRevenuePerPatient *float64 `json:"avgRevenuePerPatient,omitempty"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the practice dashboard",
	Long: `Stats prints patient, appointment, and revenue figures for the current
calendar month. When the showRevenue preference is off, revenue figures
are hidden unless the access password is supplied with --password.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		stats := reports.Stats(
			st.Patients.GetAll(),
			st.Treatments.GetAll(),
			st.Appointments.GetAll(),
			st.Payments.GetAll(),
			time.Now(),
		)

		showRevenue := st.Preferences.Get().ShowRevenue
		if !showRevenue && statsPassword != "" {
			if !st.Gate.Verify(statsPassword) {
				return types.ErrAccessDenied
			}
			showRevenue = true
		}

		out := statsOutput{
			TotalPatients:        stats.TotalPatients,
			NewPatientsThisMonth: stats.NewPatientsThisMonth,
			TodayAppointments:    stats.TodayAppointments,
			CompletedTreatments:  stats.CompletedTreatments,
		}
		if showRevenue {
			growth := stats.RevenueGrowth()
			avg := stats.AverageRevenuePerPatient()
			out.MonthRevenue = &stats.MonthRevenue
			out.LastMonthRevenue = &stats.LastMonthRevenue
			out.RevenueGrowth = &growth
			out.PendingPayments = &stats.PendingPayments
			out.AvgRevenuePerPatient = &avg
		}

		return printRecord(out, func() {
			fmt.Printf("Patients:             %d (%d new this month)\n",
				out.TotalPatients, out.NewPatientsThisMonth)
			fmt.Printf("Appointments today:   %d\n", out.TodayAppointments)
			fmt.Printf("Completed treatments: %d\n", out.CompletedTreatments)
			if !showRevenue {
				fmt.Println("Revenue figures hidden (pass --password to show)")
				return
			}
			fmt.Printf("Revenue this month:   %.2f (last month %.2f, %+.1f%%)\n",
				stats.MonthRevenue, stats.LastMonthRevenue, stats.RevenueGrowth())
			fmt.Printf("Pending payments:     %.2f\n", stats.PendingPayments)
			fmt.Printf("Avg revenue/patient:  %.2f\n", stats.AverageRevenuePerPatient())
		})
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsPassword, "password", "", "access password to reveal hidden revenue figures")
}
