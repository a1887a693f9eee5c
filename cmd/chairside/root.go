// Root command for the chairside CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/praxos/chairside/internal/paths"
	"github.com/praxos/chairside/pkg/chairside"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE.
var (
	configDataDir    string
	configQuotaBytes int64
)

var rootCmd = &cobra.Command{
	Use:     "chairside",
	Short:   "Chairside is a local-first practice management store",
	Version: chairside.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configQuotaBytes = cfg.GetInt64(cfgKeyQuotaBytes)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.chairside)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.chairside-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(patientCmd)
	rootCmd.AddCommand(treatmentCmd)
	rootCmd.AddCommand(appointmentCmd)
	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(procedureCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(balanceCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > CHAIRSIDE_DATA_DIR env >
// default $(CWD)/.chairside-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > CHAIRSIDE_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
