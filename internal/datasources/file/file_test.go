package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestSnapshotStore_WriteThenFetchJournal(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "nested", "journal-latest.json")
	updated := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	store := NewSnapshotStore(path, 6*time.Hour)
	store.Now = func() time.Time { return updated.Add(time.Hour) }

	latestID := "https://j.example.org/a"
	err := store.WriteSnapshot(ctx, domain.Snapshot{
		LastUpdated:     updated,
		FeedTitle:       "Journal",
		FeedDescription: "Policy writing",
		Articles: []domain.Article{
			{ID: latestID, Title: "A", PublishedAt: "2025-06-09T00:00:00Z"},
			{ID: "https://j.example.org/b", Title: "B", PublishedAt: "2025-06-08T00:00:00Z"},
		},
		LatestArticleID: &latestID,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	journal, err := store.FetchJournal(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, journal.LastUpdated)
	assert.Empty(t, journal.Error)
	require.Len(t, journal.Articles, 2)
	assert.Equal(t, "A", journal.Articles[0].Title)
}

func TestSnapshotStore_DegradedSnapshotIsNotAFailure(t *testing.T) {
	ctx := testContext()
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "journal-latest.json"), 0)

	msg := "fetching feed: connection refused"
	require.NoError(t, store.WriteSnapshot(ctx, domain.Snapshot{
		LastUpdated: time.Now(),
		Articles:    []domain.Article{},
		Error:       &msg,
	}))

	journal, err := store.FetchJournal(ctx)
	require.NoError(t, err)
	assert.Equal(t, msg, journal.Error)
	assert.Empty(t, journal.Articles)
}

func TestSnapshotStore_Errors(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()

	_, err := NewSnapshotStore(filepath.Join(dir, "missing.json"), 0).ReadSnapshot(ctx)
	assert.ErrorIs(t, err, datasources.ErrNotFound)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = NewSnapshotStore(bad, 0).FetchJournal(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, datasources.ErrNotFound)
}

func TestLocalNews_LoadLocalNews(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "local-news.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "lastUpdated": "2025-06-01T00:00:00Z",
  "articles": [
    {"id": "local-1", "title": "Workshop", "publishedAt": "2025-05-01", "categories": ["Events"], "type": "local"},
    {"id": "ext-1", "title": "Op-ed", "publishedAt": "2025-05-02", "categories": [], "type": "external", "externalLink": "https://news.example.com/op-ed", "featured": true}
  ]
}`), 0o644))

	news, err := LocalNews{Path: path}.LoadLocalNews(ctx)
	require.NoError(t, err)
	require.Len(t, news.Articles, 2)
	assert.Equal(t, domain.ArticleTypeLocal, news.Articles[0].Type)
	assert.Equal(t, domain.ArticleTypeExternal, news.Articles[1].Type)
	assert.True(t, news.Articles[1].Featured)
	assert.Equal(t, "https://news.example.com/op-ed", news.Articles[1].ExternalLink)

	_, err = LocalNews{Path: filepath.Join(t.TempDir(), "none.json")}.LoadLocalNews(ctx)
	assert.ErrorIs(t, err, datasources.ErrNotFound)
}

func TestFeatureConfig_LoadFeatureConfig(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "features.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
features:
  journalNotifications:
    globalDisable: true
    cooldownHours: 12
  newsSearch:
    maxResults: 7
journal:
  fetchIntervalMinutes: 15
`), 0o644))

	jsonPath := filepath.Join(dir, "admin-config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
	"features": {"newsFeed": {"articlesPerPage": 9}},
	"journal": {"cacheExpiryHours": 2}
}`), 0o644))

	cases := []struct {
		name  string
		path  string
		check func(t *testing.T, c domain.FeatureConfig)
	}{
		{
			name: "yaml_overrides_keep_defaults",
			path: yamlPath,
			check: func(t *testing.T, c domain.FeatureConfig) {
				assert.True(t, c.Features.JournalNotifications.Enabled)
				assert.False(t, c.NotificationsEnabled())
				assert.Equal(t, 12*time.Hour, c.NotificationCooldown())
				assert.Equal(t, 7, c.SearchLimit())
				assert.Equal(t, 5, c.ArticlesPerPage())
				assert.Equal(t, 15*time.Minute, c.RefreshInterval())
			},
		},
		{
			name: "json_document",
			path: jsonPath,
			check: func(t *testing.T, c domain.FeatureConfig) {
				assert.True(t, c.NotificationsEnabled())
				assert.Equal(t, 9, c.ArticlesPerPage())
				assert.Equal(t, 2*time.Hour, c.SnapshotMaxAge())
				assert.Equal(t, 20, c.SearchLimit())
			},
		},
		{
			name: "missing_file_uses_defaults",
			path: filepath.Join(dir, "absent.yaml"),
			check: func(t *testing.T, c domain.FeatureConfig) {
				assert.Equal(t, domain.DefaultFeatureConfig(), c)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader := NewFeatureConfig(tc.path)
			c := loader.LoadFeatureConfig(testContext())
			tc.check(t, c)

			// Later loads are served from memory even if the file disappears.
			_ = os.Remove(tc.path)
			assert.Equal(t, c, loader.LoadFeatureConfig(testContext()))
		})
	}
}
