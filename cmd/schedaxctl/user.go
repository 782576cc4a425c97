package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	clearCmd := &cobra.Command{
		Use:   "clear-data",
		Short: "Delete every record the user owns (schedules, events, stats, profile)",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doJSON(http.MethodDelete, userURL("/data"), nil)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	rootCmd.AddCommand(clearCmd)
}
