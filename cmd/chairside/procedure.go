// Procedure template commands.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var procedureCmd = &cobra.Command{
	Use:   "procedure",
	Short: "Manage procedure templates",
}

var (
	procName     string
	procCode     string
	procCost     float64
	procDuration int
	procCategory string
	procDesc     string
)

var procedureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a procedure template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		proc, err := st.Procedures.Add(types.ProcedureTemplate{
			Name:        procName,
			Code:        procCode,
			DefaultCost: procCost,
			Duration:    procDuration,
			Category:    procCategory,
			Description: procDesc,
		})
		if err != nil {
			return fmt.Errorf("add procedure: %w", err)
		}

		return printRecord(proc, func() {
			fmt.Printf("Added procedure: %s (%s)\n", proc.Name, proc.ID)
		})
	},
}

var procedureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List procedure templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		procs := st.Procedures.GetAll()
		return printRecord(procs, func() {
			for _, p := range procs {
				fmt.Printf("%s  %-24s %-12s %8.2f\n", p.ID, p.Name, p.Category, p.DefaultCost)
			}
			fmt.Printf("%d template(s)\n", len(procs))
		})
	},
}

var procedureGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one procedure template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		proc, err := st.Procedures.GetByID(args[0])
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no procedure template with id %q", args[0])
		}
		if err != nil {
			return err
		}

		return printRecord(proc, func() {
			fmt.Printf("%s (%s)\n", proc.Name, proc.Category)
			fmt.Printf("  cost: %.2f  duration: %dmin\n", proc.DefaultCost, proc.Duration)
			if proc.Description != "" {
				fmt.Printf("  %s\n", proc.Description)
			}
		})
	},
}

var procedureUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value>...",
	Short: "Update fields of a procedure template",
	Long: `Update shallow-merges the given fields over the stored template.
Plans that snapshotted the template keep their copied name and cost.`,
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

		if err := st.Procedures.Patch(args[0], fields); err != nil {
			return fmt.Errorf("update procedure: %w", err)
		}
		fmt.Println("Updated procedure:", args[0])
		return nil
	},
}

var procedureDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a procedure template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Procedures.Delete(args[0]); err != nil {
			return fmt.Errorf("delete procedure: %w", err)
		}
		fmt.Println("Deleted procedure:", args[0])
		return nil
	},
}

func init() {
	procedureAddCmd.Flags().StringVar(&procName, "name", "", "template name (required)")
	procedureAddCmd.Flags().StringVar(&procCode, "code", "", "billing code")
	procedureAddCmd.Flags().Float64Var(&procCost, "cost", 0, "default cost")
	procedureAddCmd.Flags().IntVar(&procDuration, "duration", 0, "default duration in minutes")
	procedureAddCmd.Flags().StringVar(&procCategory, "category", "", "category (required)")
	procedureAddCmd.Flags().StringVar(&procDesc, "description", "", "description")
	_ = procedureAddCmd.MarkFlagRequired("name")
	_ = procedureAddCmd.MarkFlagRequired("category")

	procedureCmd.AddCommand(procedureAddCmd)
	procedureCmd.AddCommand(procedureListCmd)
	procedureCmd.AddCommand(procedureGetCmd)
	procedureCmd.AddCommand(procedureUpdateCmd)
	procedureCmd.AddCommand(procedureDeleteCmd)
}
