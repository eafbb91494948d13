package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/neuravox/newsfeed/internal/datasources"
)

// ClientStateTable holds one row per client state key.
const ClientStateTable = "news_client_state"

// MaxKeyLength is the width of the state_key column.
const MaxKeyLength = 255

// ClientStateSchema creates the table used by ClientStateStore.
const ClientStateSchema = `CREATE TABLE IF NOT EXISTS news_client_state (
	state_key VARCHAR(255) NOT NULL PRIMARY KEY,
	state_value TEXT NOT NULL,
	date_updated TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

var _ datasources.ClientStateStore = (*ClientStateStore)(nil)

type ClientStateStore struct {
	db *sql.DB
}

func NewClientStateStore(db *sql.DB) *ClientStateStore {
	return &ClientStateStore{db: db}
}

// EnsureSchema creates the client state table if it does not exist yet.
func (s *ClientStateStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, ClientStateSchema); err != nil {
		return fmt.Errorf("creating %s table: %w", ClientStateTable, err)
	}
	return nil
}

func (s *ClientStateStore) Get(ctx context.Context, key string) (string, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("state_value")
	sb.From(ClientStateTable)
	sb.Where(sb.Equal("state_key", key))

	query, args := sb.Build()
	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", datasources.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading client state %s: %w", key, err)
	}
	return value, nil
}

func (s *ClientStateStore) Set(ctx context.Context, key, value string) error {
	if len(key) > MaxKeyLength {
		return fmt.Errorf("client state key is %d bytes, the limit is %d", len(key), MaxKeyLength)
	}

	ib := sqlbuilder.MySQL.NewInsertBuilder()
	ib.InsertInto(ClientStateTable)
	ib.Cols("state_key", "state_value")
	ib.Values(key, value)
	ib.SQL("ON DUPLICATE KEY UPDATE state_value = VALUES(state_value)")

	query, args := ib.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing client state %s: %w", key, err)
	}
	return nil
}

func (s *ClientStateStore) Remove(ctx context.Context, key string) error {
	dlb := sqlbuilder.MySQL.NewDeleteBuilder()
	dlb.DeleteFrom(ClientStateTable)
	dlb.Where(dlb.Equal("state_key", key))

	query, args := dlb.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("removing client state %s: %w", key, err)
	}
	return nil
}
