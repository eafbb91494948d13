package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

var (
	_ datasources.SnapshotWriter = (*SnapshotStore)(nil)
	_ datasources.JournalSource  = (*SnapshotStore)(nil)
)

// SnapshotStore reads and writes the journal snapshot document at a fixed path.
type SnapshotStore struct {
	Path string
	// MaxAge is how old a snapshot may be before reads log it as stale. Zero disables the check.
	MaxAge time.Duration
	Now    func() time.Time
}

func NewSnapshotStore(path string, maxAge time.Duration) *SnapshotStore {
	return &SnapshotStore{Path: path, MaxAge: maxAge, Now: time.Now}
}

func (s *SnapshotStore) ReadSnapshot(_ context.Context) (domain.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Snapshot{}, fmt.Errorf("reading snapshot %s: %w", s.Path, datasources.ErrNotFound)
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("reading snapshot %s: %w", s.Path, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decoding snapshot %s: %w", s.Path, err)
	}
	return snapshot, nil
}

// WriteSnapshot replaces the snapshot atomically so readers never observe a partial document.
func (s *SnapshotStore) WriteSnapshot(_ context.Context, snapshot domain.Snapshot) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// FetchJournal serves the snapshot as a fallback journal source.
// An error snapshot is still a successful read; its message is passed along as degradation.
func (s *SnapshotStore) FetchJournal(ctx context.Context) (domain.JournalArticles, error) {
	snapshot, err := s.ReadSnapshot(ctx)
	if err != nil {
		return domain.JournalArticles{}, err
	}

	logger := domain.LoggerFromContext(ctx)
	out := domain.JournalArticles{
		LastUpdated: snapshot.LastUpdated,
		Articles:    snapshot.Articles,
	}
	if snapshot.Degraded() {
		out.Error = *snapshot.Error
		logger.WarnContext(ctx, "journal snapshot was written after a failed fetch", "error", out.Error)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if age := now().Sub(snapshot.LastUpdated); s.MaxAge > 0 && age > s.MaxAge {
		logger.WarnContext(ctx, "journal snapshot is stale",
			"path", s.Path,
			"age", age.String(),
			"max_age", s.MaxAge.String(),
		)
	}

	return out, nil
}
