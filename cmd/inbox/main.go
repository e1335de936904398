package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Threadline inbox in the terminal",
	Long: `inbox talks to the Threadline marketplace API with the same cache,
polling and optimistic send engine the web backend uses.

Examples:
  # Sign in and export the token for later commands
  export THREADLINE_TOKEN=$(inbox login --email dee@example.com --password secret --quiet)

  # Follow a conversation; new messages appear as they are polled
  inbox watch 42

  # Send a message
  inbox send 42 "Can you ship samples by Friday?"

  # Keep an eye on the unread counter
  inbox unread --watch`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(unreadCmd)
	rootCmd.AddCommand(suppliersCmd)

	rootCmd.PersistentFlags().String("api", "", "Marketplace API base URL (defaults to API_BASE_URL)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (defaults to THREADLINE_TOKEN)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
