// Package newsview keeps a long-lived, display-ready view of the aggregated news collection.
package newsview

import (
	"context"
	"sync"
	"time"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// DefaultRetryDelay is how long the initial load waits before starting its single extra attempt.
const DefaultRetryDelay = time.Second

// State is a point-in-time copy of what the view holds.
type State struct {
	Loading    bool
	Err        string
	Collection *domain.Collection
}

// View loads the collection once, retains the last good copy across failed refreshes and
// refreshes it on the configured interval while running.
type View struct {
	News          command.Command[command.AggregateNewsRequest, *domain.Collection]
	FeatureConfig datasources.FeatureConfigLoader
	RetryDelay    time.Duration

	mu    sync.RWMutex
	state State
}

// New creates a properly initialized View.
func New(
	news command.Command[command.AggregateNewsRequest, *domain.Collection],
	featureConfig datasources.FeatureConfigLoader,
) *View {
	return &View{
		News:          news,
		FeatureConfig: featureConfig,
		RetryDelay:    DefaultRetryDelay,
		state:         State{Loading: true},
	}
}

func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

type loadResult struct {
	collection *domain.Collection
	err        error
}

// Load performs the initial load. If nothing has come back after RetryDelay, exactly one more
// attempt is started and the first successful result is kept. Results arriving after ctx is done
// are dropped.
func (v *View) Load(ctx context.Context) {
	v.setLoading()

	results := make(chan loadResult, 2)
	attempt := func() {
		go func() {
			c, err := v.News.Execute(ctx, command.AggregateNewsRequest{})
			results <- loadResult{collection: c, err: err}
		}()
	}

	attempt()
	pending, retried := 1, false

	timer := time.NewTimer(v.retryDelay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if !retried {
				domain.LoggerFromContext(ctx).InfoContext(ctx, "initial news load is slow, retrying once")
				attempt()
				pending++
				retried = true
			}
		case r := <-results:
			pending--
			// A failure only waits if the other attempt is still out.
			if r.err != nil && pending > 0 {
				continue
			}
			v.apply(ctx, r.collection, r.err)
			return
		}
	}
}

// Refresh forces a rebuild of the collection and applies the result.
func (v *View) Refresh(ctx context.Context) {
	c, err := v.News.Execute(ctx, command.AggregateNewsRequest{ForceRefresh: true})
	v.apply(ctx, c, err)
}

// Run loads the collection and then refreshes it every configured fetch interval until ctx is done.
func (v *View) Run(ctx context.Context) error {
	v.Load(ctx)

	interval := v.FeatureConfig.LoadFeatureConfig(ctx).RefreshInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			v.Refresh(ctx)
		}
	}
}

func (v *View) apply(ctx context.Context, c *domain.Collection, err error) {
	if ctx.Err() != nil {
		return
	}
	logger := domain.LoggerFromContext(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Loading = false

	if err != nil {
		logger.WarnContext(ctx, "news refresh failed, keeping previous collection", "error", err)
		v.state.Err = err.Error()
		return
	}

	v.state.Err = c.Error
	if c.Error != "" && len(c.Articles) == 0 && v.state.Collection != nil && len(v.state.Collection.Articles) > 0 {
		logger.WarnContext(ctx, "news refresh came back empty, keeping previous collection", "error", c.Error)
		return
	}
	v.state.Collection = c
}

func (v *View) setLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Loading = true
}

func (v *View) retryDelay() time.Duration {
	if v.RetryDelay <= 0 {
		return DefaultRetryDelay
	}
	return v.RetryDelay
}
