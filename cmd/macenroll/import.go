package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"macenroll/internal/gateway"
	"macenroll/internal/store"
	"macenroll/internal/usecase"
)

var (
	rosterFile    string
	assetFile     string
	inventoryFile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Reconcile the three exports and assemble enrollment records",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&rosterFile, "roster", "", "roster CSV file (required)")
	importCmd.Flags().StringVar(&assetFile, "assets", "", "asset-management export CSV file (required)")
	importCmd.Flags().StringVar(&inventoryFile, "inventory", "", "inventory export CSV file (required)")
	_ = importCmd.MarkFlagRequired("roster")
	_ = importCmd.MarkFlagRequired("assets")
	_ = importCmd.MarkFlagRequired("inventory")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	uc := usecase.NewImportUseCase(
		gateway.NewCSVTableRepository(),
		gateway.NewCSVReportWriter(),
		settings.Defaults,
		logger,
	)

	result, err := uc.Import(cmd.Context(), rosterFile, assetFile, inventoryFile)
	if err != nil {
		return err
	}

	uc.WriteReports(result, settings.OutputDir)

	list, err := store.LoadFile(machineListPath())
	if err != nil {
		return err
	}
	list.AddAll(result.Records)
	if err := list.SaveFile(machineListPath()); err != nil {
		return err
	}

	fmt.Printf("%d records assembled, %d missing, %d duplicates, %d pending\n",
		len(result.Records), len(result.Missing), len(result.Duplicates), list.Len())
	return nil
}
