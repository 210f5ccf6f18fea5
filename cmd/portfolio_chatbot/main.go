// Package main provides the entry point for the portfolio chatbot API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_chatbot",
	Short: "Portfolio Chatbot HTTP API Server",
	Long:  "Portfolio Chatbot answers visitor questions about the portfolio, grounding each reply in the most relevant portfolio sections before calling the chat-completion service.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
