package datasources

import (
	"context"
	"errors"
	"fmt"

	"github.com/neuravox/newsfeed/internal/domain"
)

// ErrNoProviders is returned by Fallback when it is given nothing to try.
var ErrNoProviders = errors.New("no providers configured")

// Provider is one named entry in an ordered fallback chain.
type Provider[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
}

// JournalProvider builds a Provider from a JournalSource.
func JournalProvider(name string, source JournalSource) Provider[domain.JournalArticles] {
	return Provider[domain.JournalArticles]{Name: name, Fetch: source.FetchJournal}
}

// Fallback tries each provider in order and returns the first success together with its name.
// If every provider fails the joined errors are returned.
func Fallback[T any](ctx context.Context, providers ...Provider[T]) (T, string, error) {
	var zero T
	if len(providers) == 0 {
		return zero, "", ErrNoProviders
	}

	logger := domain.LoggerFromContext(ctx)

	var errs []error
	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		v, err := p.Fetch(ctx)
		if err == nil {
			return v, p.Name, nil
		}

		logger.WarnContext(ctx, "provider failed, trying next", "provider", p.Name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name, err))
	}

	return zero, "", errors.Join(errs...)
}
