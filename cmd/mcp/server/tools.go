package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/neuravox/newsfeed/cmd/mcp/client"
)

var validTypes = []string{"journal", "local", "external"}

func (s *Server) handleSearchNews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters, err := parseSearchFilters(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	articles, err := s.client.SearchNews(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search news: %v", err)), nil
	}

	return formatArticlesResult(articles)
}

func parseSearchFilters(args map[string]any) (client.SearchFilters, error) {
	filters := client.SearchFilters{}

	if query, ok := args["query"].(string); ok {
		filters.Query = strings.TrimSpace(query)
	}
	if categories, ok := args["categories"].(string); ok && categories != "" {
		filters.Categories = splitAndTrim(categories)
	}
	if articleType, ok := args["type"].(string); ok && articleType != "" {
		articleType = strings.ToLower(articleType)
		if !contains(validTypes, articleType) {
			return filters, fmt.Errorf("type must be one of %s", strings.Join(validTypes, ", "))
		}
		filters.Type = articleType
	}
	filters.Limit = parseLimit(args, 0)

	return filters, nil
}

func (s *Server) handleLatestNews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articles, err := s.client.LatestNews(ctx, parseLimit(request.Params.Arguments, 5))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get latest news: %v", err)), nil
	}

	return formatArticlesResult(articles)
}

func (s *Server) handleListNews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments
	page, pageSize := parsePagination(args)
	featuredFirst, _ := args["featured_first"].(bool)

	result, err := s.client.ListNews(ctx, page, pageSize, featuredFirst)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list news: %v", err)), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format news page: %v", err)), nil
	}

	msg := fmt.Sprintf("Page %d of %d (%d article(s) in total):\n\n%s",
		result.Metadata.Page, result.Metadata.TotalPages, result.Metadata.TotalCount, string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleListCategories(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list categories: %v", err)), nil
	}

	if len(categories) == 0 {
		return mcp.NewToolResultText("No categories found."), nil
	}
	return mcp.NewToolResultText(strings.Join(categories, "\n")), nil
}

func (s *Server) handleCheckNotification(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	clientID, ok := request.Params.Arguments["client_id"].(string)
	if !ok || clientID == "" {
		return mcp.NewToolResultError("client_id is required"), nil
	}

	notification, err := s.client.CheckNotification(ctx, clientID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to check notification: %v", err)), nil
	}

	if !notification.Show || notification.Article == nil {
		return mcp.NewToolResultText("No notification would be shown."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Would notify about %q (%s).",
		notification.Article.Title, notification.Article.ID)), nil
}

func (s *Server) handleRefreshNews(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	result, err := s.client.RefreshNews(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to refresh news: %v", err)), nil
	}

	msg := fmt.Sprintf("Refreshed: %d article(s) as of %s.", result.TotalCount, result.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	if result.Error != "" {
		msg += " Some sources failed: " + result.Error
	}
	return mcp.NewToolResultText(msg), nil
}

func parseLimit(args map[string]any, fallback int) int {
	if l, ok := args["limit"].(float64); ok && l > 0 {
		return min(int(l), 100)
	}
	return fallback
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 200)
	}
	return page, pageSize
}

func splitAndTrim(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func formatArticlesResult(articles []client.Article) (*mcp.CallToolResult, error) {
	if len(articles) == 0 {
		return mcp.NewToolResultText("No articles found."), nil
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format articles: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d article(s):\n\n%s", len(articles), string(data))
	return mcp.NewToolResultText(msg), nil
}
