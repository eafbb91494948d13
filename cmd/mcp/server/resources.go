package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	latestNewsURI = "news://latest"
	categoriesURI = "news://categories"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.NewResource(
			latestNewsURI,
			"Latest news",
			mcp.WithResourceDescription("The newest articles across the journal feed and the curated news list."),
			mcp.WithMIMEType("application/json"),
		),
		s.handleLatestResource,
	)

	s.mcpServer.AddResource(
		mcp.NewResource(
			categoriesURI,
			"News categories",
			mcp.WithResourceDescription("Every category currently used by an article in the collection."),
			mcp.WithMIMEType("application/json"),
		),
		s.handleCategoriesResource,
	)
}

func (s *Server) handleLatestResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	articles, err := s.client.LatestNews(ctx, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest news: %w", err)
	}
	return jsonResource(request.Params.URI, articles)
}

func (s *Server) handleCategoriesResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return jsonResource(request.Params.URI, categories)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
