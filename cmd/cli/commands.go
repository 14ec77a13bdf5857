package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dryRun bool
	season string
)

func init() {
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute points without writing anything")
	ingestCmd.Flags().StringVar(&season, "season", "", "Season the feed file belongs to (defaults to the server's configured season)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <player> <file>",
	Short: "Upload one player's performance feed file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open feed file: %w", err)
		}
		defer f.Close()

		endpoint := "/ingest?player=" + strings.ReplaceAll(args[0], " ", "+")
		if season != "" {
			endpoint += "&season=" + season
		}
		return performPostRequest(endpoint, f)
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Trigger a points reconciliation run",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/reconcile"
		if dryRun {
			endpoint += "?dry_run=true"
		}
		return performPostRequest(endpoint, nil)
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the ranked team leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
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

	return printResponse(resp)
}

func performPostRequest(endpoint string, body io.Reader) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "text/plain", body)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
