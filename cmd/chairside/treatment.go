// Treatment commands: CRUD over the treatments collection.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var treatmentCmd = &cobra.Command{
	Use:   "treatment",
	Short: "Manage treatment records",
}

var (
	treatmentPatient   string
	treatmentDate      string
	treatmentProcedure string
	treatmentTooth     string
	treatmentNotes     string
	treatmentCost      float64
	treatmentPaid      float64
	treatmentStatus    string
)

var treatmentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a treatment for a patient",
	Long: `Add records a treatment. The patient's last-visit date is updated to
the treatment date.

Example:
  chairside treatment add --patient 0192x --date 2026-09-01 --procedure "Filling" --cost 120`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		treatment, err := st.Treatments.Add(types.Treatment{
			PatientID: treatmentPatient,
			Date:      treatmentDate,
			Procedure: treatmentProcedure,
			Tooth:     treatmentTooth,
			Notes:     treatmentNotes,
			Cost:      treatmentCost,
			Paid:      treatmentPaid,
			Status:    treatmentStatus,
		})
		if err != nil {
			return fmt.Errorf("add treatment: %w", err)
		}

		if err := st.Patients.MarkVisit(treatment.PatientID, treatment.Date); err != nil {
			return fmt.Errorf("record visit: %w", err)
		}

		return printRecord(treatment, func() {
			fmt.Printf("Recorded treatment: %s (%s)\n", treatment.Procedure, treatment.ID)
		})
	},
}

var treatmentListCmd = &cobra.Command{
	Use:   "list [patient-id]",
	Short: "List treatments, optionally for one patient",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		var treatments []types.Treatment
		if len(args) == 1 {
			treatments = st.Treatments.ByPatient(args[0])
		} else {
			treatments = st.Treatments.GetAll()
		}

		return printRecord(treatments, func() {
			for _, t := range treatments {
				fmt.Printf("%s  %s  %-20s %8.2f  paid %8.2f  %s\n",
					t.ID, t.Date, t.Procedure, t.Cost, t.Paid, t.Status)
			}
			fmt.Printf("%d treatment(s)\n", len(treatments))
		})
	},
}

var treatmentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one treatment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		treatment, err := st.Treatments.GetByID(args[0])
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no treatment with id %q", args[0])
		}
		if err != nil {
			return err
		}

		return printRecord(treatment, func() {
			fmt.Printf("%s  %s  %s\n", treatment.Date, treatment.Procedure, treatment.Status)
			fmt.Printf("  cost: %.2f  paid: %.2f  outstanding: %.2f\n",
				treatment.Cost, treatment.Paid, treatment.Outstanding())
			if treatment.Notes != "" {
				fmt.Printf("  notes: %s\n", treatment.Notes)
			}
		})
	},
}

var treatmentUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value>...",
	Short: "Update fields of a treatment",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}

		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Treatments.Patch(args[0], fields); err != nil {
			return fmt.Errorf("update treatment: %w", err)
		}
		fmt.Println("Updated treatment:", args[0])
		return nil
	},
}

var treatmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a treatment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Treatments.Delete(args[0]); err != nil {
			return fmt.Errorf("delete treatment: %w", err)
		}
		fmt.Println("Deleted treatment:", args[0])
		return nil
	},
}

func init() {
	treatmentAddCmd.Flags().StringVar(&treatmentPatient, "patient", "", "patient id (required)")
	treatmentAddCmd.Flags().StringVar(&treatmentDate, "date", "", "treatment date 2006-01-02 (required)")
	treatmentAddCmd.Flags().StringVar(&treatmentProcedure, "procedure", "", "procedure name (required)")
	treatmentAddCmd.Flags().StringVar(&treatmentTooth, "tooth", "", "tooth designation")
	treatmentAddCmd.Flags().StringVar(&treatmentNotes, "notes", "", "clinical notes")
	treatmentAddCmd.Flags().Float64Var(&treatmentCost, "cost", 0, "treatment cost")
	treatmentAddCmd.Flags().Float64Var(&treatmentPaid, "paid", 0, "amount already paid")
	treatmentAddCmd.Flags().StringVar(&treatmentStatus, "status", "", "completed, planned, or ongoing (default completed)")
	_ = treatmentAddCmd.MarkFlagRequired("patient")
	_ = treatmentAddCmd.MarkFlagRequired("date")
	_ = treatmentAddCmd.MarkFlagRequired("procedure")

	treatmentCmd.AddCommand(treatmentAddCmd)
	treatmentCmd.AddCommand(treatmentListCmd)
	treatmentCmd.AddCommand(treatmentGetCmd)
	treatmentCmd.AddCommand(treatmentUpdateCmd)
	treatmentCmd.AddCommand(treatmentDeleteCmd)
}
