package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Journal</title>
  <description>Essays on AI policy</description>
  <item>
    <title>AI Governance Framework</title>
    <link>https://journal.example.org/p/governance</link>
    <guid>j-1</guid>
    <pubDate>Mon, 09 Jun 2025 08:00:00 GMT</pubDate>
    <description>A framework for oversight.</description>
    <category>Governance</category>
  </item>
  <item>
    <title>Unrelated Topic</title>
    <link>https://journal.example.org/p/other</link>
    <guid>j-2</guid>
    <pubDate>Sun, 08 Jun 2025 08:00:00 GMT</pubDate>
    <description>Gardening tips.</description>
  </item>
</channel>
</rss>`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestSnapshotThenSearch(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer feed.Close()

	dir := t.TempDir()
	snapshotPath := filepath.Join(dir, "nested", "journal.json")
	localPath := filepath.Join(dir, "news.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"articles":[
		{"id":"l-1","title":"Workshop on model audits","publishedAt":"2025-06-01","categories":["Events"]}
	]}`), 0o644))

	out, err := runCmd(t, "snapshot", "--feed-url", feed.URL, "--snapshot", snapshotPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 2 article(s)")
	assert.Contains(t, out, `Latest article: "AI Governance Framework"`)

	data, err := os.ReadFile(snapshotPath)
	require.NoError(t, err)
	var snapshot domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.NotNil(t, snapshot.LatestArticleID)
	assert.Equal(t, "j-1", *snapshot.LatestArticleID)
	assert.Empty(t, snapshot.Error)

	common := []string{"--snapshot", snapshotPath, "--local-news", localPath, "--feature-config", filepath.Join(dir, "missing.yaml")}

	out, err = runCmd(t, append([]string{"search", "goverance"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-09  journal   AI Governance Framework")
	assert.NotContains(t, out, "Unrelated Topic")

	out, err = runCmd(t, append([]string{"search", "--type", "local"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Workshop on model audits")
	assert.NotContains(t, out, "AI Governance Framework")

	out, err = runCmd(t, append([]string{"categories"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, "AI Policy\nEvents\nGovernance\nJournal\n", out)
}

func TestSnapshot_FeedFailureWritesDegradedSnapshot(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer feed.Close()

	snapshotPath := filepath.Join(t.TempDir(), "journal.json")

	_, err := runCmd(t, "snapshot", "--feed-url", feed.URL, "--out", snapshotPath)
	require.Error(t, err)

	data, readErr := os.ReadFile(snapshotPath)
	require.NoError(t, readErr)
	var snapshot domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.NotEmpty(t, snapshot.Error)
	assert.Empty(t, snapshot.Articles)
}

func TestSearch_RejectsUnknownType(t *testing.T) {
	_, err := runCmd(t, "search", "--type", "blog", "--snapshot", filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown article type")
}
