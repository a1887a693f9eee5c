// Backup commands: export, import, and the gated clear.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var (
	exportPatientsOnly bool
	exportOutput       string
	importPatientsOnly bool
	clearPassword      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export practice data as JSON",
	Long: `Export writes patients, treatments, appointments, and payments as a
single JSON document to stdout or to the file given with -o. Procedure
templates, plans, and preferences are not included. With
--patients-only, only the patient roster is exported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		var data []byte
		if exportPatientsOnly {
			data, err = st.Backup.ExportPatients()
		} else {
			data, err = st.Backup.ExportAll()
		}
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		fmt.Println("Exported to", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import practice data from a JSON export",
	Long: `Import replaces each collection present in the document; collections
absent from the document are left untouched. The document is validated
before anything is written, so a malformed file changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if importPatientsOnly {
			err = st.Backup.ImportPatients(data)
		} else {
			err = st.Backup.ImportAll(data)
		}
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Println("Imported", args[0])
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all practice data",
	Long: `Clear deletes every collection, including procedure templates, plans,
and preferences. Irreversible. The access password is required and
survives the wipe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if !st.Gate.Verify(clearPassword) {
			return types.ErrAccessDenied
		}
		if err := st.Backup.ClearAll(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		fmt.Println("All data cleared")
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportPatientsOnly, "patients-only", false, "export only the patient roster")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	importCmd.Flags().BoolVar(&importPatientsOnly, "patients-only", false, "import only the patient roster")

	clearCmd.Flags().StringVar(&clearPassword, "password", "", "access password (required)")
	_ = clearCmd.MarkFlagRequired("password")
}
