package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	eventsCmd := &cobra.Command{Use: "events", Short: "Institutional event operations"}

	var date string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally filtered to one date",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := userURL("/events")
			if date != "" {
				url += "?date=" + date
			}
			data, err := doGet(url)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&date, "date", "d", "", "ISO date filter (YYYY-MM-DD)")
	eventsCmd.AddCommand(listCmd)

	var title, desc, evDate, evTime, evType, location string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"title":       title,
				"description": desc,
				"date":        evDate,
				"time":        evTime,
				"type":        evType,
				"location":    location,
			}
			data, err := doJSON(http.MethodPost, userURL("/events"), payload)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Event title (required)")
	createCmd.Flags().StringVar(&desc, "description", "", "Event description")
	createCmd.Flags().StringVarP(&evDate, "date", "d", "", "ISO date (required)")
	createCmd.Flags().StringVar(&evTime, "time", "", "Time HH:MM (required)")
	createCmd.Flags().StringVar(&evType, "type", "other", "Event type")
	createCmd.Flags().StringVarP(&location, "location", "l", "", "Location")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("date")
	_ = createCmd.MarkFlagRequired("time")
	eventsCmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete EVENT_ID",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doJSON(http.MethodDelete, userURL("/events/"+args[0]), nil)
			if err != nil {
				return err
			}
			printJSON(data)
			return nil
		},
	}
	eventsCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(eventsCmd)
}
