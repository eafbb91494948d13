package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// NotificationGate decides whether a client should be told about the newest journal article.
// Each client's seen list and last notification time live in the ClientStateStore.
type NotificationGate struct {
	News          Command[AggregateNewsRequest, *domain.Collection]
	Store         datasources.ClientStateStore
	FeatureConfig datasources.FeatureConfigLoader
	Now           func() time.Time
}

// NewNotificationGate creates a properly initialized NotificationGate.
func NewNotificationGate(
	news Command[AggregateNewsRequest, *domain.Collection],
	store datasources.ClientStateStore,
	featureConfig datasources.FeatureConfigLoader,
) *NotificationGate {
	return &NotificationGate{
		News:          news,
		Store:         store,
		FeatureConfig: featureConfig,
		Now:           time.Now,
	}
}

func SeenArticlesKey(clientID string) string {
	return "newsfeed:" + clientID + ":seen-articles"
}

func LastNotificationKey(clientID string) string {
	return "newsfeed:" + clientID + ":last-notification"
}

// Check returns the newest journal article if the client has not seen it and is out of cooldown.
func (g *NotificationGate) Check(ctx context.Context, clientID string) (domain.Notification, error) {
	config := g.FeatureConfig.LoadFeatureConfig(ctx)
	if !config.NotificationsEnabled() {
		return domain.Notification{}, nil
	}

	cooledDown, err := g.isCooledDown(ctx, clientID, config.NotificationCooldown())
	if err != nil {
		return domain.Notification{}, err
	}
	if !cooledDown {
		return domain.Notification{}, nil
	}

	collection, err := g.News.Execute(ctx, AggregateNewsRequest{})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("loading news collection: %w", err)
	}

	latest, ok := domain.LatestOfType(collection.Articles, domain.ArticleTypeJournal)
	if !ok {
		return domain.Notification{}, nil
	}

	seen, err := g.HasSeen(ctx, clientID, latest.ID)
	if err != nil {
		return domain.Notification{}, err
	}
	if seen {
		return domain.Notification{}, nil
	}

	return domain.Notification{Show: true, Article: &latest}, nil
}

// Dismiss marks the article as seen and starts the cooldown.
func (g *NotificationGate) Dismiss(ctx context.Context, clientID, articleID string) error {
	if err := g.MarkSeen(ctx, clientID, articleID); err != nil {
		return err
	}
	return g.SetShown(ctx, clientID)
}

// IsCooledDown reports whether the configured cooldown has passed since the last notification.
// A client that was never notified, or whose stored time cannot be parsed, is cooled down.
func (g *NotificationGate) IsCooledDown(ctx context.Context, clientID string) (bool, error) {
	cooldown := g.FeatureConfig.LoadFeatureConfig(ctx).NotificationCooldown()
	return g.isCooledDown(ctx, clientID, cooldown)
}

func (g *NotificationGate) isCooledDown(ctx context.Context, clientID string, cooldown time.Duration) (bool, error) {
	raw, err := g.Store.Get(ctx, LastNotificationKey(clientID))
	if errors.Is(err, datasources.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading last notification time: %w", err)
	}

	lastShown, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "ignoring unparseable last notification time",
			"clientID", clientID,
			"value", raw,
		)
		return true, nil
	}

	return domain.CooledDown(lastShown, g.now(), cooldown), nil
}

// SetShown records now as the client's last notification time.
func (g *NotificationGate) SetShown(ctx context.Context, clientID string) error {
	value := g.now().UTC().Format(time.RFC3339Nano)
	if err := g.Store.Set(ctx, LastNotificationKey(clientID), value); err != nil {
		return fmt.Errorf("writing last notification time: %w", err)
	}
	return nil
}

// SeenArticles returns the client's seen article IDs, oldest first.
func (g *NotificationGate) SeenArticles(ctx context.Context, clientID string) ([]string, error) {
	raw, err := g.Store.Get(ctx, SeenArticlesKey(clientID))
	if errors.Is(err, datasources.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading seen articles: %w", err)
	}

	var seen []string
	if err := json.Unmarshal([]byte(raw), &seen); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "discarding unreadable seen articles list",
			"clientID", clientID,
			"error", err,
		)
		return []string{}, nil
	}
	return seen, nil
}

func (g *NotificationGate) HasSeen(ctx context.Context, clientID, articleID string) (bool, error) {
	seen, err := g.SeenArticles(ctx, clientID)
	if err != nil {
		return false, err
	}
	return slices.Contains(seen, articleID), nil
}

// MarkSeen appends the article to the client's seen list, evicting the oldest beyond MaxSeenArticles.
func (g *NotificationGate) MarkSeen(ctx context.Context, clientID, articleID string) error {
	seen, err := g.SeenArticles(ctx, clientID)
	if err != nil {
		return err
	}

	updated := domain.AppendSeen(seen, articleID, domain.MaxSeenArticles)
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("encoding seen articles: %w", err)
	}
	if err := g.Store.Set(ctx, SeenArticlesKey(clientID), string(data)); err != nil {
		return fmt.Errorf("writing seen articles: %w", err)
	}
	return nil
}

// Reset forgets the client's seen list and cooldown.
func (g *NotificationGate) Reset(ctx context.Context, clientID string) error {
	if err := g.Store.Remove(ctx, SeenArticlesKey(clientID)); err != nil {
		return fmt.Errorf("removing seen articles: %w", err)
	}
	if err := g.Store.Remove(ctx, LastNotificationKey(clientID)); err != nil {
		return fmt.Errorf("removing last notification time: %w", err)
	}
	return nil
}

func (g *NotificationGate) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}
