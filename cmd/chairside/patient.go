// Patient commands: CRUD over the patients collection.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patient records",
}

var (
	patientName      string
	patientDOB       string
	patientPhone     string
	patientEmail     string
	patientAddress   string
	patientAllergies string
	patientInsurance string
)

var patientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new patient",
	Long: `Add creates a new patient record. The ID and creation timestamp are
assigned by the store.

Example:
  chairside patient add --name "Ana Petrov" --phone 555-0100
  chairside patient add --name "Ana Petrov" --phone 555-0100 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		patient, err := st.Patients.Add(types.Patient{
			Name:        patientName,
			DateOfBirth: patientDOB,
			Phone:       patientPhone,
			Email:       patientEmail,
			Address:     patientAddress,
			Allergies:   patientAllergies,
			Insurance:   patientInsurance,
		})
		if err != nil {
			return fmt.Errorf("add patient: %w", err)
		}

		return printRecord(patient, func() {
			fmt.Printf("Added patient: %s (%s)\n", patient.Name, patient.ID)
		})
	},
}

var patientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all patients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		patients := st.Patients.GetAll()
		return printRecord(patients, func() {
			for _, p := range patients {
				fmt.Printf("%s  %-24s %s\n", p.ID, p.Name, p.Phone)
			}
			fmt.Printf("%d patient(s)\n", len(patients))
		})
	},
}

var patientGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one patient",
	Args:  cobra.ExactArgs(1),
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

		return printRecord(patient, func() {
			fmt.Printf("%s\n  phone: %s\n  created: %s\n", patient.Name, patient.Phone, patient.CreatedAt)
			if patient.LastVisit != "" {
				fmt.Printf("  last visit: %s\n", patient.LastVisit)
			}
		})
	},
}

var patientUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value>...",
	Short: "Update fields of a patient",
	Long: `Update shallow-merges the given fields over the stored patient.
Unlisted fields are unchanged; id and createdAt cannot be updated.

Example:
  chairside patient update 0192x phone=555-0199 email=ana@example.com`,
	Args: cobra.MinimumNArgs(2),
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

		if err := st.Patients.Patch(args[0], fields); err != nil {
			return fmt.Errorf("update patient: %w", err)
		}
		fmt.Println("Updated patient:", args[0])
		return nil
	},
}

var patientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a patient",
	Long: `Delete removes the patient record. Treatments, appointments, and
payments referencing the patient are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Patients.Delete(args[0]); err != nil {
			return fmt.Errorf("delete patient: %w", err)
		}
		fmt.Println("Deleted patient:", args[0])
		return nil
	},
}

func init() {
	patientAddCmd.Flags().StringVar(&patientName, "name", "", "full name (required)")
	patientAddCmd.Flags().StringVar(&patientDOB, "dob", "", "date of birth (2006-01-02)")
	patientAddCmd.Flags().StringVar(&patientPhone, "phone", "", "phone number (required)")
	patientAddCmd.Flags().StringVar(&patientEmail, "email", "", "email address")
	patientAddCmd.Flags().StringVar(&patientAddress, "address", "", "postal address")
	patientAddCmd.Flags().StringVar(&patientAllergies, "allergies", "", "known allergies")
	patientAddCmd.Flags().StringVar(&patientInsurance, "insurance", "", "insurance details")
	_ = patientAddCmd.MarkFlagRequired("name")
	_ = patientAddCmd.MarkFlagRequired("phone")

	patientCmd.AddCommand(patientAddCmd)
	patientCmd.AddCommand(patientListCmd)
	patientCmd.AddCommand(patientGetCmd)
	patientCmd.AddCommand(patientUpdateCmd)
	patientCmd.AddCommand(patientDeleteCmd)
}
