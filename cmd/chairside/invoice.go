// Invoice totals command.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/reports"
	"github.com/praxos/chairside/pkg/types"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice <patient-id>",
	Short: "Compute invoice totals for a patient",
	Long: `Invoice totals the patient's treatments and payments under the taxRate
preference. The balance goes negative on overpayment and is not
clamped.`,
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

		treatments := st.Treatments.ByPatient(patient.ID)
		payments := st.Payments.ByPatient(patient.ID)
		inv := reports.ComputeInvoice(treatments, payments, st.Preferences.Get().TaxRate)

		return printRecord(inv, func() {
			fmt.Printf("Invoice for %s\n", patient.Name)
			for _, t := range treatments {
				fmt.Printf("  %s  %-24s %8.2f\n", t.Date, t.Procedure, t.Cost)
			}
			fmt.Printf("  subtotal: %10.2f\n", inv.Subtotal)
			fmt.Printf("  tax %4.1f%%: %9.2f\n", inv.TaxRate, inv.Tax)
			fmt.Printf("  total:    %10.2f\n", inv.Total)
			fmt.Printf("  paid:     %10.2f\n", inv.AmountPaid)
			fmt.Printf("  balance:  %10.2f\n", inv.Balance)
		})
	},
}
