package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	statsCmd := &cobra.Command{Use: "stats", Short: "Academic statistics operations"}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Get the user's academic statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(userURL("/stats"))
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	statsCmd.AddCommand(getCmd)

	var file string
	putCmd := &cobra.Command{
		Use:   "put",
		Short: "Save academic statistics from a JSON file (or stdin with -f -)",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(file)
			if err != nil {
				return err
			}
			var payload map[string]interface{}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("invalid stats JSON: %w", err)
			}
			data, err := doJSON(http.MethodPut, userURL("/stats"), payload)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	putCmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the statistics record (required)")
	_ = putCmd.MarkFlagRequired("file")
	statsCmd.AddCommand(putCmd)

	rootCmd.AddCommand(statsCmd)

	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Get the derived analytics snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(userURL("/analytics"))
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	rootCmd.AddCommand(analyticsCmd)
}
