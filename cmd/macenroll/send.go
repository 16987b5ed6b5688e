package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"macenroll/internal/store"
	"macenroll/internal/transport"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Deliver pending enrollment payloads",
	Long: `Uploads one scx-<assetNumber>.json payload per pending record. Delivered
records leave the pending list; failed records stay for a later retry. In
test mode payloads are written to the local upload directory instead of the
network destination.`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	list, err := store.LoadFile(machineListPath())
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		fmt.Println("nothing to send")
		return nil
	}

	var uploader transport.Uploader
	if settings.TestMode {
		uploader = &transport.LocalUploader{Logger: logger, Root: settings.UploadDir}
	} else {
		uploader = &transport.S3Uploader{Logger: logger}
	}

	dispatcher := transport.NewDispatcher(uploader, list, logger)
	summary := dispatcher.SendAll(cmd.Context(), settings.Host, settings.Share, settings.Credentials)

	if err := list.SaveFile(machineListPath()); err != nil {
		return err
	}

	fmt.Println(summary.String())
	return nil
}
