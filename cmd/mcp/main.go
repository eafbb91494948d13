// Package main provides the entry point for the news MCP server.
//
// The server exposes search, listing and notification checks over the news API
// to MCP-capable agents using the stdio transport.
//
// Configuration:
//
//	NEWSFEED_API_URL   - Base URL of the API (default: http://localhost:8080)
//	NEWSFEED_API_TOKEN - Admin API token, only needed for refresh_news
package main

import (
	"log"
	"os"

	"github.com/neuravox/newsfeed/cmd/mcp/client"
	"github.com/neuravox/newsfeed/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("NEWSFEED_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL, os.Getenv("NEWSFEED_API_TOKEN"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
