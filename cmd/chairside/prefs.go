// Preferences commands over the singleton settings record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current preferences",
	Long:  `Get prints the stored preferences merged over the defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		prefs := st.Preferences.Get()
		return printRecord(prefs, func() {
			fmt.Printf("primaryColor:  %s\n", prefs.PrimaryColor)
			fmt.Printf("showRevenue:   %t\n", prefs.ShowRevenue)
			fmt.Printf("taxRate:       %g\n", prefs.TaxRate)
			if prefs.ClinicName != "" {
				fmt.Printf("clinicName:    %s\n", prefs.ClinicName)
			}
			if prefs.ClinicAddress != "" {
				fmt.Printf("clinicAddress: %s\n", prefs.ClinicAddress)
			}
			if prefs.ClinicPhone != "" {
				fmt.Printf("clinicPhone:   %s\n", prefs.ClinicPhone)
			}
			if prefs.ClinicEmail != "" {
				fmt.Printf("clinicEmail:   %s\n", prefs.ClinicEmail)
			}
		})
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <field=value>...",
	Short: "Change preference fields",
	Long: `Set merges the given fields over the stored preferences. Unlisted
fields keep their current value.

Example:
  chairside prefs set taxRate=10 clinicName="Smile Dental"
  chairside prefs set showRevenue=false`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseFields(args)
		if err != nil {
			return err
		}

		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Preferences.Set(fields); err != nil {
			return fmt.Errorf("set preferences: %w", err)
		}
		fmt.Println("Preferences updated")
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
