// Access gate password command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxos/chairside/pkg/types"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Manage the access password",
}

var (
	passwordOld string
	passwordNew string
)

var passwordChangeCmd = &cobra.Command{
	Use:   "change",
	Short: "Change the access password",
	Long: `Change replaces the access password after verifying the current one.
The stored value is obfuscated, not hashed; the gate deters casual
snooping on a shared machine and is not a security boundary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		changed, err := st.Gate.Change(passwordOld, passwordNew)
		if err != nil {
			return fmt.Errorf("change password: %w", err)
		}
		if !changed {
			return types.ErrAccessDenied
		}
		fmt.Println("Password changed")
		return nil
	},
}

func init() {
	passwordChangeCmd.Flags().StringVar(&passwordOld, "old", "", "current password (required)")
	passwordChangeCmd.Flags().StringVar(&passwordNew, "new", "", "new password (required)")
	_ = passwordChangeCmd.MarkFlagRequired("old")
	_ = passwordChangeCmd.MarkFlagRequired("new")

	passwordCmd.AddCommand(passwordChangeCmd)
}
