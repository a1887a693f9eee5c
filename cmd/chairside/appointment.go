// Appointment commands: CRUD over the appointments collection.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var appointmentCmd = &cobra.Command{
	Use:     "appointment",
	Aliases: []string{"appt"},
	Short:   "Manage appointments",
}

var (
	apptPatient  string
	apptDate     string
	apptTime     string
	apptDuration int
	apptType     string
	apptNotes    string
	apptChair    string

	apptFilterDate    string
	apptFilterPatient string
)

var appointmentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Book an appointment",
	Long: `Add books an appointment. The patient's name is snapshotted into the
appointment at creation and does not follow later renames.

Example:
  chairside appointment add --patient 0192x --date 2026-09-03 --time 14:30 --duration 45 --type checkup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		appt, err := st.Appointments.Add(types.Appointment{
			PatientID: apptPatient,
			Date:      apptDate,
			Time:      apptTime,
			Duration:  apptDuration,
			Type:      apptType,
			Notes:     apptNotes,
			Chair:     apptChair,
		})
		if err != nil {
			return fmt.Errorf("add appointment: %w", err)
		}

		return printRecord(appt, func() {
			fmt.Printf("Booked %s %s for %s (%s)\n", appt.Date, appt.Time, appt.PatientName, appt.ID)
		})
	},
}

var appointmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments, optionally filtered by date or patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		var appts []types.Appointment
		switch {
		case apptFilterDate != "":
			appts = st.Appointments.ByDate(apptFilterDate)
		case apptFilterPatient != "":
			appts = st.Appointments.ByPatient(apptFilterPatient)
		default:
			appts = st.Appointments.GetAll()
		}

		return printRecord(appts, func() {
			for _, a := range appts {
				fmt.Printf("%s  %s %s  %3dmin  %-18s %s  %s\n",
					a.ID, a.Date, a.Time, a.Duration, a.PatientName, a.Type, a.Status)
			}
			fmt.Printf("%d appointment(s)\n", len(appts))
		})
	},
}

var appointmentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		appt, err := st.Appointments.GetByID(args[0])
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no appointment with id %q", args[0])
		}
		if err != nil {
			return err
		}

		return printRecord(appt, func() {
			fmt.Printf("%s %s  %dmin  %s\n", appt.Date, appt.Time, appt.Duration, appt.PatientName)
			fmt.Printf("  type: %s  status: %s\n", appt.Type, appt.Status)
			if appt.Notes != "" {
				fmt.Printf("  notes: %s\n", appt.Notes)
			}
		})
	},
}

var appointmentUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value>...",
	Short: "Update fields of an appointment",
	Long: `Update shallow-merges the given fields over the stored appointment,
e.g. status=cancelled or status=no-show.`,
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

		if err := st.Appointments.Patch(args[0], fields); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		fmt.Println("Updated appointment:", args[0])
		return nil
	},
}

var appointmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Appointments.Delete(args[0]); err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}
		fmt.Println("Deleted appointment:", args[0])
		return nil
	},
}

func init() {
	appointmentAddCmd.Flags().StringVar(&apptPatient, "patient", "", "patient id (required)")
	appointmentAddCmd.Flags().StringVar(&apptDate, "date", "", "appointment date 2006-01-02 (required)")
	appointmentAddCmd.Flags().StringVar(&apptTime, "time", "", "appointment time, e.g. 14:30 (required)")
	appointmentAddCmd.Flags().IntVar(&apptDuration, "duration", 30, "duration in minutes")
	appointmentAddCmd.Flags().StringVar(&apptType, "type", "", "appointment type, e.g. checkup")
	appointmentAddCmd.Flags().StringVar(&apptNotes, "notes", "", "notes")
	appointmentAddCmd.Flags().StringVar(&apptChair, "chair", "", "chair designation")
	_ = appointmentAddCmd.MarkFlagRequired("patient")
	_ = appointmentAddCmd.MarkFlagRequired("date")
	_ = appointmentAddCmd.MarkFlagRequired("time")

	appointmentListCmd.Flags().StringVar(&apptFilterDate, "date", "", "only appointments on this day")
	appointmentListCmd.Flags().StringVar(&apptFilterPatient, "patient", "", "only appointments for this patient")

	appointmentCmd.AddCommand(appointmentAddCmd)
	appointmentCmd.AddCommand(appointmentListCmd)
	appointmentCmd.AddCommand(appointmentGetCmd)
	appointmentCmd.AddCommand(appointmentUpdateCmd)
	appointmentCmd.AddCommand(appointmentDeleteCmd)
}
