// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/neuravox/newsfeed/cmd/mcp/client"
)

// Server is the MCP server for the news API.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"newsfeed",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("search_news",
		mcp.WithDescription(
			"Fuzzy search over the aggregated news collection. Tolerates typos and ranks "+
				"title matches above matches in the excerpt, content, author or categories. "+
				"Without a query, returns the newest articles matching the filters."),
		mcp.WithString("query",
			mcp.Description("Search text"),
		),
		mcp.WithString("categories",
			mcp.Description("Comma-separated categories; an article matches if any of its categories contains one of these (case-insensitive)"),
		),
		mcp.WithString("type",
			mcp.Description("Restrict to one article type"),
			mcp.Enum("journal", "local", "external"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of articles to return (default: 20, max: 100)"),
		),
	), s.handleSearchNews)

	s.mcpServer.AddTool(mcp.NewTool("latest_news",
		mcp.WithDescription("Get the newest articles across all sources."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of articles to return (default: 5, max: 100)"),
		),
	), s.handleLatestNews)

	s.mcpServer.AddTool(mcp.NewTool("list_news",
		mcp.WithDescription("Page through the aggregated collection, newest first."),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of articles per page (default: server setting, max: 200)"),
		),
		mcp.WithBoolean("featured_first",
			mcp.Description("Put featured articles ahead of the rest"),
		),
	), s.handleListNews)

	s.mcpServer.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List every category used by articles in the collection."),
	), s.handleListCategories)

	s.mcpServer.AddTool(mcp.NewTool("check_journal_notification",
		mcp.WithDescription("Check whether a client would be shown a notification for the newest journal article."),
		mcp.WithString("client_id",
			mcp.Required(),
			mcp.Description("The client identifier used for notification state"),
		),
	), s.handleCheckNotification)

	s.mcpServer.AddTool(mcp.NewTool("refresh_news",
		mcp.WithDescription("Force the server to rebuild the collection from its sources. Requires an admin API token."),
	), s.handleRefreshNews)
}
