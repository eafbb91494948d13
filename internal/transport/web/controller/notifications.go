package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/neuravox/newsfeed/internal/domain"
)

// ClientIDHeader identifies anonymous clients to the notification endpoints.
const ClientIDHeader = "X-Client-ID"

// MaxClientIDLength bounds client ids so the keys derived from them fit the client state stores.
const MaxClientIDLength = 200

// maxDismissBodyBytes bounds the JSON body accepted by NotificationDismiss.
const maxDismissBodyBytes = 8 << 10

type NotificationGate interface {
	Check(ctx context.Context, clientID string) (domain.Notification, error)
	Dismiss(ctx context.Context, clientID, articleID string) error
	Reset(ctx context.Context, clientID string) error
}

// clientID prefers the authenticated user over the client-supplied header. It returns "" when
// neither is usable.
func clientID(r *http.Request) string {
	if userID := domain.UserIDFromContext(r.Context()); userID != "" {
		return userID
	}
	id := strings.TrimSpace(r.Header.Get(ClientIDHeader))
	if len(id) > MaxClientIDLength {
		return ""
	}
	return id
}

type dismissRequest struct {
	ArticleID string `json:"articleId"`
}

// dismissArticleID reads the article id from the article_id query parameter, else from a JSON
// body. Journal article ids are usually URLs, so they are never taken from the path.
func dismissArticleID(r *http.Request) (string, error) {
	if id := r.URL.Query().Get("article_id"); id != "" {
		return id, nil
	}

	var req dismissRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxDismissBodyBytes)).Decode(&req)
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(req.ArticleID), nil
}

type NotificationCheck struct {
	Gate NotificationGate
}

func (c NotificationCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id := clientID(r)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	notification, err := c.Gate.Check(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "unable to check journal notification", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(notification); err != nil {
		logger.ErrorContext(ctx, "unable to write notification to response", "error", err)
	}
}

type NotificationDismiss struct {
	Gate NotificationGate
}

func (c NotificationDismiss) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id := clientID(r)
	articleID, err := dismissArticleID(r)
	if err != nil {
		logger.WarnContext(ctx, "invalid dismiss request body", "error", err)
	}
	if id == "" || articleID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.Gate.Dismiss(ctx, id, articleID); err != nil {
		logger.ErrorContext(ctx, "unable to dismiss journal notification", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type NotificationReset struct {
	Gate NotificationGate
}

func (c NotificationReset) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id := clientID(r)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.Gate.Reset(ctx, id); err != nil {
		logger.ErrorContext(ctx, "unable to reset journal notifications", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
