package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	importMode  string
	importToken string
	statsTeam   string
	statsPlayer string
)

func init() {
	importCmd.Flags().StringVar(&importMode, "mode", "replace", "Import mode: replace or append")
	importCmd.Flags().StringVar(&importToken, "token", "", "Import token (defaults to IMPORT_TOKEN)")
	statsCmd.Flags().StringVar(&statsTeam, "team", "", "Filter by team name")
	statsCmd.Flags().StringVar(&statsPlayer, "player", "", "Filter by player name")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(importsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List player stats, optionally filtered by team or player",
	RunE: func(cmd *cobra.Command, args []string) error {
		values := url.Values{}
		if statsTeam != "" {
			values.Set("team", statsTeam)
		}
		if statsPlayer != "" {
			values.Set("player", statsPlayer)
		}
		endpoint := "/stats"
		if enc := values.Encode(); enc != "" {
			endpoint += "?" + enc
		}
		return performGetRequest(endpoint)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Fetch the team standings via the proxy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings")
	},
}

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "List recorded import runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/imports")
	},
}

var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Upload a stats CSV to the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read csv file: %w", err)
		}

		token := importToken
		if token == "" {
			token = os.Getenv("IMPORT_TOKEN")
		}

		values := url.Values{}
		values.Set("token", token)
		values.Set("mode", importMode)
		endpoint := host + "/import?" + values.Encode()
		fmt.Printf("Making request to %s\n", host+"/import")

		resp, err := http.Post(endpoint, "text/csv", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		fmt.Printf("Status Code: %d\n", resp.StatusCode)
		fmt.Println("Response Body:")
		fmt.Println(string(body))
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
