package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	profileCmd := &cobra.Command{Use: "profile", Short: "User profile operations"}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Get the user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(userURL("/profile"))
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	profileCmd.AddCommand(getCmd)

	var file string
	putCmd := &cobra.Command{
		Use:   "put",
		Short: "Save the user's profile from a JSON file (or stdin with -f -)",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(file)
			if err != nil {
				return err
			}
			var payload map[string]interface{}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("invalid profile JSON: %w", err)
			}
			data, err := doJSON(http.MethodPut, userURL("/profile"), payload)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	putCmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the profile (required)")
	_ = putCmd.MarkFlagRequired("file")
	profileCmd.AddCommand(putCmd)

	rootCmd.AddCommand(profileCmd)
}
