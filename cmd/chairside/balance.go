// Patient balance command.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/reports"
	"github.com/praxos/chairside/pkg/types"
)

// balanceOutput pairs the treatment-ledger balance with the payments total.
// The two figures track different things and are deliberately shown side by
// side rather than reconciled.
type balanceOutput struct {
	TotalCost     float64 `json:"totalCost"`
	TotalPaid     float64 `json:"totalPaid"`
	Balance       float64 `json:"balance"`
	PaymentsTotal float64 `json:"paymentsTotal"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance <patient-id>",
	Short: "Show a patient's outstanding balance",
	Long: `Balance sums the patient's treatment costs against the paid amounts
recorded on the treatments, and separately totals the payments
collection for the patient.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		patient, err := st.Patients.GetByID(args[0])
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no patient with id %q", args[0])
		}
		if err != nil {
			return err
		}

		bal := reports.PatientBalance(st.Treatments.ByPatient(patient.ID))
		var paymentsTotal float64
		for _, p := range st.Payments.ByPatient(patient.ID) {
			paymentsTotal += p.Amount
		}

		out := balanceOutput{
			TotalCost:     bal.TotalCost,
			TotalPaid:     bal.TotalPaid,
			Balance:       bal.Balance,
			PaymentsTotal: paymentsTotal,
		}
		return printRecord(out, func() {
			fmt.Printf("Balance for %s\n", patient.Name)
			fmt.Printf("  billed:     %10.2f\n", out.TotalCost)
			fmt.Printf("  paid:       %10.2f\n", out.TotalPaid)
			fmt.Printf("  balance:    %10.2f\n", out.Balance)
			fmt.Printf("  payments:   %10.2f\n", out.PaymentsTotal)
		})
	},
}
