package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"macenroll/internal/store"
)

var (
	removeIDs []string
	removeAll bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show pending enrollment records",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := store.LoadFile(machineListPath())
		if err != nil {
			return err
		}
		output, err := json.MarshalIndent(list.Records(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove pending enrollment records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !removeAll && len(removeIDs) == 0 {
			return fmt.Errorf("either --id or --all is required")
		}

		list, err := store.LoadFile(machineListPath())
		if err != nil {
			return err
		}

		before := list.Len()
		if removeAll {
			list.RemoveAll()
		} else {
			list.RemoveSelected(removeIDs)
		}
		if err := list.SaveFile(machineListPath()); err != nil {
			return err
		}

		fmt.Printf("removed %d, %d pending\n", before-list.Len(), list.Len())
		return nil
	},
}

func init() {
	removeCmd.Flags().StringArrayVar(&removeIDs, "id", nil, "record id to remove (repeatable)")
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every pending record")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
}
