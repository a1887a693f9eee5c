// Treatment plan commands. Plan lines snapshot the procedure template's
// name and cost at the moment they are added.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage treatment plans",
}

var (
	planName string
	planDesc string

	planLineProcedure string
	planLineTooth     string
	planLineNotes     string
	planLineCost      float64
)

var planAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a treatment plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		plan, err := st.Plans.Add(types.TreatmentPlan{
			Name:        planName,
			Description: planDesc,
		})
		if err != nil {
			return fmt.Errorf("add plan: %w", err)
		}

		return printRecord(plan, func() {
			fmt.Printf("Created plan: %s (%s)\n", plan.Name, plan.ID)
		})
	},
}

var planAddProcedureCmd = &cobra.Command{
	Use:   "add-procedure <plan-id>",
	Short: "Append a procedure line to a plan",
	Long: `Add-procedure appends a line to the plan. The line's name and cost are
copied from the template now; editing the template later does not change
the plan. Pass --cost to override the template's default cost.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		template, err := st.Procedures.GetByID(planLineProcedure)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no procedure template with id %q", planLineProcedure)
		}
		if err != nil {
			return err
		}

		cost := template.DefaultCost
		if cmd.Flags().Changed("cost") {
			cost = planLineCost
		}

		line := types.PlanProcedure{
			ProcedureID:   template.ID,
			ProcedureName: template.Name,
			Tooth:         planLineTooth,
			Cost:          cost,
			Notes:         planLineNotes,
		}
		err = st.Plans.Update(args[0], func(p *types.TreatmentPlan) {
			p.Procedures = append(p.Procedures, line)
		})
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		fmt.Printf("Added %s to plan %s\n", template.Name, args[0])
		return nil
	},
}

var planRemoveProcedureCmd = &cobra.Command{
	Use:   "remove-procedure <plan-id> <line-number>",
	Short: "Remove a procedure line from a plan",
	Long:  `Remove-procedure drops the line at the given 1-based position.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid line number %q", args[1])
		}

		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		err = st.Plans.Update(args[0], func(p *types.TreatmentPlan) {
			if n > len(p.Procedures) {
				return
			}
			p.Procedures = append(p.Procedures[:n-1], p.Procedures[n:]...)
		})
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		fmt.Printf("Removed line %d from plan %s\n", n, args[0])
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List treatment plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		plans := st.Plans.GetAll()
		return printRecord(plans, func() {
			for _, p := range plans {
				fmt.Printf("%s  %-24s %d line(s)  %8.2f\n", p.ID, p.Name, len(p.Procedures), p.TotalCost)
			}
			fmt.Printf("%d plan(s)\n", len(plans))
		})
	},
}

var planGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one treatment plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		plan, err := st.Plans.GetByID(args[0])
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no plan with id %q", args[0])
		}
		if err != nil {
			return err
		}

		return printRecord(plan, func() {
			fmt.Printf("%s\n", plan.Name)
			if plan.Description != "" {
				fmt.Printf("  %s\n", plan.Description)
			}
			for i, line := range plan.Procedures {
				fmt.Printf("  %2d. %-24s %8.2f", i+1, line.ProcedureName, line.Cost)
				if line.Tooth != "" {
					fmt.Printf("  tooth %s", line.Tooth)
				}
				fmt.Println()
			}
			fmt.Printf("  total: %.2f\n", plan.TotalCost)
		})
	},
}

var planUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a plan or change its description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		nameSet := cmd.Flags().Changed("name")
		descSet := cmd.Flags().Changed("description")
		if !nameSet && !descSet {
			return fmt.Errorf("nothing to update: pass --name or --description")
		}

		err = st.Plans.Update(args[0], func(p *types.TreatmentPlan) {
			if nameSet {
				p.Name = planName
			}
			if descSet {
				p.Description = planDesc
			}
		})
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		fmt.Println("Updated plan:", args[0])
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a treatment plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		if err := st.Plans.Delete(args[0]); err != nil {
			return fmt.Errorf("delete plan: %w", err)
		}
		fmt.Println("Deleted plan:", args[0])
		return nil
	},
}

func init() {
	planAddCmd.Flags().StringVar(&planName, "name", "", "plan name (required)")
	planAddCmd.Flags().StringVar(&planDesc, "description", "", "plan description")
	_ = planAddCmd.MarkFlagRequired("name")

	planUpdateCmd.Flags().StringVar(&planName, "name", "", "new plan name")
	planUpdateCmd.Flags().StringVar(&planDesc, "description", "", "new description")

	planAddProcedureCmd.Flags().StringVar(&planLineProcedure, "procedure", "", "procedure template id (required)")
	planAddProcedureCmd.Flags().StringVar(&planLineTooth, "tooth", "", "tooth designation")
	planAddProcedureCmd.Flags().StringVar(&planLineNotes, "notes", "", "line notes")
	planAddProcedureCmd.Flags().Float64Var(&planLineCost, "cost", 0, "override the template's default cost")
	_ = planAddProcedureCmd.MarkFlagRequired("procedure")

	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planAddProcedureCmd)
	planCmd.AddCommand(planRemoveProcedureCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planGetCmd)
	planCmd.AddCommand(planUpdateCmd)
	planCmd.AddCommand(planDeleteCmd)
}
