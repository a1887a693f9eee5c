// Payment commands over the payments collection. Payments are recorded and
// deleted, never edited.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payments",
}

var (
	paymentPatient   string
	paymentTreatment string
	paymentDate      string
	paymentAmount    float64
	paymentMethod    string
	paymentNotes     string
)

var paymentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a payment",
	Long: `Add records a payment from a patient. The optional --treatment flag
links the payment to a treatment; the link is informational only.

Example:
  chairside payment add --patient 0192x --date 2026-09-01 --amount 60 --method card`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		payment, err := st.Payments.Add(types.Payment{
			PatientID:   paymentPatient,
			TreatmentID: paymentTreatment,
			Date:        paymentDate,
			Amount:      paymentAmount,
			Method:      paymentMethod,
			Notes:       paymentNotes,
		})
		if err != nil {
			return fmt.Errorf("add payment: %w", err)
		}

		return printRecord(payment, func() {
			fmt.Printf("Recorded payment: %.2f %s (%s)\n", payment.Amount, payment.Method, payment.ID)
		})
	},
}

var paymentListCmd = &cobra.Command{
	Use:   "list [patient-id]",
	Short: "List payments, optionally for one patient",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		var payments []types.Payment
		if len(args) == 1 {
			payments = st.Payments.ByPatient(args[0])
		} else {
			payments = st.Payments.GetAll()
		}

		return printRecord(payments, func() {
			for _, p := range payments {
				fmt.Printf("%s  %s  %8.2f  %-9s %s\n", p.ID, p.Date, p.Amount, p.Method, p.Notes)
			}
			fmt.Printf("%d payment(s)\n", len(payments))
		})
	},
}

var paymentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		payment, err := st.Payments.GetByID(args[0])
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no payment with id %q", args[0])
		}
		if err != nil {
			return err
		}

		return printRecord(payment, func() {
			fmt.Printf("%s  %.2f %s\n", payment.Date, payment.Amount, payment.Method)
			if payment.Notes != "" {
				fmt.Printf("  notes: %s\n", payment.Notes)
			}
		})
	},
}

var paymentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Payments.Delete(args[0]); err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		fmt.Println("Deleted payment:", args[0])
		return nil
	},
}

func init() {
	paymentAddCmd.Flags().StringVar(&paymentPatient, "patient", "", "patient id (required)")
	paymentAddCmd.Flags().StringVar(&paymentTreatment, "treatment", "", "treatment id")
	paymentAddCmd.Flags().StringVar(&paymentDate, "date", "", "payment date 2006-01-02 (required)")
	paymentAddCmd.Flags().Float64Var(&paymentAmount, "amount", 0, "amount received (required)")
	paymentAddCmd.Flags().StringVar(&paymentMethod, "method", "cash", "cash, card, insurance, or transfer")
	paymentAddCmd.Flags().StringVar(&paymentNotes, "notes", "", "notes")
	_ = paymentAddCmd.MarkFlagRequired("patient")
	_ = paymentAddCmd.MarkFlagRequired("date")
	_ = paymentAddCmd.MarkFlagRequired("amount")

	paymentCmd.AddCommand(paymentAddCmd)
	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentGetCmd)
	paymentCmd.AddCommand(paymentDeleteCmd)
}
