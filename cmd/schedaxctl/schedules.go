package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	schedulesCmd := &cobra.Command{Use: "schedules", Short: "Schedule operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the user's schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(userURL("/schedules"))
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	schedulesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get SCHEDULE_ID",
		Short: "Get one schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(userURL("/schedules/" + args[0]))
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	schedulesCmd.AddCommand(getCmd)

	var file string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a schedule from a JSON file (or stdin with -f -)",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(file)
			if err != nil {
				return err
			}
			var payload map[string]interface{}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("invalid schedule JSON: %w", err)
			}
			data, err := doJSON(http.MethodPost, userURL("/schedules"), payload)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the schedule (required)")
	_ = createCmd.MarkFlagRequired("file")
	schedulesCmd.AddCommand(createCmd)

	var completed bool
	completeCmd := &cobra.Command{
		Use:   "complete SCHEDULE_ID",
		Short: "Toggle a schedule's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doJSON(http.MethodPatch, userURL("/schedules/"+args[0]+"/completed"),
				map[string]bool{"completed": completed})
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	completeCmd.Flags().BoolVar(&completed, "value", true, "Completed value to set")
	schedulesCmd.AddCommand(completeCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete SCHEDULE_ID",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doJSON(http.MethodDelete, userURL("/schedules/"+args[0]), nil)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	schedulesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(schedulesCmd)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
