package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/neuravox/newsfeed/internal/command"
	cmdmocks "github.com/neuravox/newsfeed/internal/command/mocks"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/neuravox/newsfeed/internal/transport/web/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubGate struct{}

func (stubGate) Check(context.Context, string) (domain.Notification, error) {
	return domain.Notification{}, nil
}
func (stubGate) Dismiss(context.Context, string, string) error { return nil }
func (stubGate) Reset(context.Context, string) error           { return nil }

const testAdminToken = AdminTokenPrefix + "secret"

type recordingGate struct {
	stubGate
	clientID  string
	articleID string
}

func (g *recordingGate) Dismiss(_ context.Context, clientID, articleID string) error {
	g.clientID, g.articleID = clientID, articleID
	return nil
}

func testRouter(t *testing.T) http.Handler {
	return testRouterWithGate(t, stubGate{})
}

func testRouterWithGate(t *testing.T, gate controller.NotificationGate) http.Handler {
	aggregate := cmdmocks.NewMockCommand[command.AggregateNewsRequest, *domain.Collection](t)
	aggregate.EXPECT().Execute(mock.Anything, command.AggregateNewsRequest{ForceRefresh: true}).
		Return(&domain.Collection{Articles: []domain.Article{}}, nil).Maybe()

	h, err := MakeRouter(
		Services{
			AggregateNews:  aggregate,
			ListNews:       cmdmocks.NewMockCommand[command.ListNewsRequest, command.ListNewsResult](t),
			LatestNews:     cmdmocks.NewMockCommand[command.LatestNewsRequest, []domain.Article](t),
			SearchNews:     cmdmocks.NewMockCommand[command.SearchNewsRequest, []domain.Article](t),
			ListCategories: cmdmocks.NewMockCommand[command.Empty, []string](t),
			Notifications:  gate,
			FeatureConfig:  datasources.StaticFeatureConfig(domain.DefaultFeatureConfig()),
		},
		CacheConfig{},
		RSSConfig{BaseURL: "https://news.example.org"},
		NewAuthMiddleware([]AuthValidator{NewAdminTokenValidator(testAdminToken)}),
	)
	require.NoError(t, err)
	return h
}

func TestMakeRouter(t *testing.T) {
	cases := []struct {
		name          string
		method        string
		path          string
		authorization string
		clientID      string
		wantStatus    int
	}{
		{
			name:       "refresh_requires_auth",
			method:     http.MethodPost,
			path:       "/v1/news/refresh",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "refresh_rejects_wrong_token",
			method:        http.MethodPost,
			path:          "/v1/news/refresh",
			authorization: "Bearer " + AdminTokenPrefix + "guess",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "refresh_with_admin_token",
			method:        http.MethodPost,
			path:          "/v1/news/refresh",
			authorization: "Bearer " + testAdminToken,
			wantStatus:    http.StatusOK,
		},
		{
			name:       "refresh_get_not_allowed",
			method:     http.MethodGet,
			path:       "/v1/news/refresh",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "cors_preflight",
			method:     http.MethodOptions,
			path:       "/v1/news",
			wantStatus: http.StatusOK,
		},
		{
			name:       "notification_without_client",
			method:     http.MethodGet,
			path:       "/v1/notifications/journal",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "notification_with_client",
			method:     http.MethodGet,
			path:       "/v1/notifications/journal",
			clientID:   "browser-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "notification_dismiss",
			method:     http.MethodPost,
			path:       "/v1/notifications/journal/dismiss?article_id=j-1",
			clientID:   "browser-1",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "notification_dismiss_without_article",
			method:     http.MethodPost,
			path:       "/v1/notifications/journal/dismiss",
			clientID:   "browser-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "notification_reset",
			method:     http.MethodDelete,
			path:       "/v1/notifications/journal",
			clientID:   "browser-1",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown_route",
			method:     http.MethodGet,
			path:       "/v1/articles",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := testRouter(t)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			req = req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			if tc.clientID != "" {
				req.Header.Set("X-Client-ID", tc.clientID)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			// mux answers unmatched routes before any middleware runs.
			if tc.wantStatus != http.StatusNotFound && tc.wantStatus != http.StatusMethodNotAllowed {
				assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestMakeRouter_DismissURLShapedArticleID(t *testing.T) {
	const articleID = "https://journal.example.org/p/ai-governance?ref=feed"

	cases := []struct {
		name        string
		path        string
		body        string
		contentType string
	}{
		{
			name: "query_parameter",
			path: "/v1/notifications/journal/dismiss?article_id=" + url.QueryEscape(articleID),
		},
		{
			name:        "json_body",
			path:        "/v1/notifications/journal/dismiss",
			body:        `{"articleId":"` + articleID + `"}`,
			contentType: "application/json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gate := &recordingGate{}
			h := testRouterWithGate(t, gate)

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			req = req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
			req.Header.Set("X-Client-ID", "c1")
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, "c1", gate.clientID)
			assert.Equal(t, articleID, gate.articleID)
		})
	}
}
