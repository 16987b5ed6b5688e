package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"macenroll/internal/store"
	"macenroll/internal/usecase"
)

var manualEntry usecase.ManualEntry

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single enrollment record by hand",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&manualEntry.FriendlyName, "friendly-name", "", "machine name (required)")
	addCmd.Flags().StringVar(&manualEntry.EndUserName, "end-user", "", "assigned user (required)")
	addCmd.Flags().StringVar(&manualEntry.SerialNumber, "serial", "", "serial number (required)")
	addCmd.Flags().StringVar(&manualEntry.AssetNumber, "asset", "", "inventory number (required)")
	addCmd.Flags().StringVar(&manualEntry.DeviceType, "device-type", usecase.DeviceTypeLaptop,
		"device category: laptop, desktop or classroom")
	addCmd.Flags().StringVar(&manualEntry.EmployeeType, "employee-type", "", "employee type")
	addCmd.Flags().StringVar(&manualEntry.VPNSelect, "vpn", "", "VPN selection")
	addCmd.Flags().StringVar(&manualEntry.Sciper, "sciper", "", "SCIPER identifier")
	addCmd.Flags().BoolVar(&manualEntry.TableauDesktop, "tableau-desktop", false, "install Tableau Desktop")
	addCmd.Flags().BoolVar(&manualEntry.TableauPrep, "tableau-prep", false, "install Tableau Prep")
	addCmd.Flags().BoolVar(&manualEntry.Filemaker, "filemaker", false, "install FileMaker")
	addCmd.Flags().BoolVar(&manualEntry.Mindmanager, "mindmanager", false, "install MindManager")
	addCmd.Flags().BoolVar(&manualEntry.LinaException, "lina-exception", false, "backup exception")
	addCmd.Flags().BoolVar(&manualEntry.AcrobatReaderException, "acrobat-exception", false, "Acrobat Reader exception")
	_ = addCmd.MarkFlagRequired("friendly-name")
	_ = addCmd.MarkFlagRequired("end-user")
	_ = addCmd.MarkFlagRequired("serial")
	_ = addCmd.MarkFlagRequired("asset")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	list, err := store.LoadFile(machineListPath())
	if err != nil {
		return err
	}

	rec := list.Add(usecase.NewManualRecord(manualEntry, settings.Defaults))
	if err := list.SaveFile(machineListPath()); err != nil {
		return err
	}

	fmt.Printf("added %s (%s), %d pending\n", rec.FriendlyName, rec.ID, list.Len())
	return nil
}
