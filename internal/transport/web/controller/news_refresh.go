package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/domain"
)

// NewsRefresh rebuilds the aggregated collection immediately.
type NewsRefresh struct {
	Command command.Command[command.AggregateNewsRequest, *domain.Collection]
}

type NewsRefreshResponse struct {
	TotalCount  int                 `json:"total_count"`
	LastUpdated time.Time           `json:"last_updated"`
	Sources     domain.SourceCounts `json:"sources"`
	Error       string              `json:"error,omitempty"`
}

func (c NewsRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	collection, err := c.Command.Execute(ctx, command.AggregateNewsRequest{ForceRefresh: true})
	if err != nil {
		logger.ErrorContext(ctx, "unable to refresh news", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.InfoContext(ctx, "news refreshed on request",
		"userID", domain.UserIDFromContext(ctx),
		"total", collection.TotalCount,
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(NewsRefreshResponse{
		TotalCount:  collection.TotalCount,
		LastUpdated: collection.LastUpdated,
		Sources:     collection.Sources,
		Error:       collection.Error,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write refresh result to response", "error", err)
	}
}
