package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"macenroll/internal/conf"
	"macenroll/internal/log"
)

var (
	cfgFile  string
	settings *conf.Settings
	logger   logrus.FieldLogger
)

// machineListName is the working file carrying assembled records between
// import and send.
const machineListName = "machines.json"

var rootCmd = &cobra.Command{
	Use:   "macenroll",
	Short: "Reconcile machine exports and deliver enrollment payloads",
	Long: `macenroll reconciles a name roster, an asset-management export and an
inventory export, reports missing and duplicate matches, assembles one
enrollment record per correlated machine and delivers the per-machine
payloads to the configured destination.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = conf.Load(cfgFile)
		if err != nil {
			return err
		}
		logger = log.New(settings.LogFile, "macenroll", os.Getenv("ENVIRONMENT"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to an env-format config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func machineListPath() string {
	return filepath.Join(settings.OutputDir, machineListName)
}
