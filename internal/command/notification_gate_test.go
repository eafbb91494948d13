package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/datasources/mocks"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNotificationGate(
	clock *testClock,
	config domain.FeatureConfig,
	store datasources.ClientStateStore,
) *NotificationGate {
	gate := NewNotificationGate(staticNews{collection: testCollection()}, store, datasources.StaticFeatureConfig(config))
	gate.Now = clock.Now
	return gate
}

func TestNotificationGate_Check(t *testing.T) {
	disabled := domain.DefaultFeatureConfig()
	disabled.Features.JournalNotifications.Enabled = false

	globallyDisabled := domain.DefaultFeatureConfig()
	globallyDisabled.Features.JournalNotifications.GlobalDisable = true

	cases := []struct {
		name     string
		config   domain.FeatureConfig
		setup    func(t *testing.T, ctx context.Context, g *NotificationGate, clock *testClock)
		wantShow bool
	}{
		{
			name:     "eligible_for_new_client",
			config:   domain.DefaultFeatureConfig(),
			wantShow: true,
		},
		{
			name:   "disabled",
			config: disabled,
		},
		{
			name:   "globally_disabled",
			config: globallyDisabled,
		},
		{
			name:   "latest_already_seen",
			config: domain.DefaultFeatureConfig(),
			setup: func(t *testing.T, ctx context.Context, g *NotificationGate, _ *testClock) {
				require.NoError(t, g.MarkSeen(ctx, "client", "a1"))
			},
		},
		{
			name:   "within_cooldown",
			config: domain.DefaultFeatureConfig(),
			setup: func(t *testing.T, ctx context.Context, g *NotificationGate, clock *testClock) {
				require.NoError(t, g.SetShown(ctx, "client"))
				clock.Advance(23 * time.Hour)
			},
		},
		{
			name:   "after_cooldown",
			config: domain.DefaultFeatureConfig(),
			setup: func(t *testing.T, ctx context.Context, g *NotificationGate, clock *testClock) {
				require.NoError(t, g.SetShown(ctx, "client"))
				clock.Advance(24*time.Hour + time.Second)
			},
			wantShow: true,
		},
		{
			name:   "unparseable_last_shown_counts_as_cooled_down",
			config: domain.DefaultFeatureConfig(),
			setup: func(t *testing.T, ctx context.Context, g *NotificationGate, _ *testClock) {
				require.NoError(t, g.Store.Set(ctx, LastNotificationKey("client"), "yesterday-ish"))
			},
			wantShow: true,
		},
		{
			name:   "other_client_state_is_separate",
			config: domain.DefaultFeatureConfig(),
			setup: func(t *testing.T, ctx context.Context, g *NotificationGate, _ *testClock) {
				require.NoError(t, g.Dismiss(ctx, "someone-else", "a1"))
			},
			wantShow: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			clock := newTestClock()
			gate := newTestNotificationGate(clock, tc.config, datasources.NewMemoryClientStateStore())

			if tc.setup != nil {
				tc.setup(t, ctx, gate, clock)
			}

			got, err := gate.Check(ctx, "client")
			require.NoError(t, err)
			assert.Equal(t, tc.wantShow, got.Show)
			if tc.wantShow {
				require.NotNil(t, got.Article)
				assert.Equal(t, "a1", got.Article.ID)
			} else {
				assert.Nil(t, got.Article)
			}
		})
	}
}

func TestNotificationGate_Check_NoJournalArticle(t *testing.T) {
	ctx := testContext()
	collection := domain.BuildCollection([]domain.Article{
		{ID: "local-1", Type: domain.ArticleTypeLocal, PublishedAt: "2025-06-01"},
	}, nil, time.Now())

	gate := NewNotificationGate(staticNews{collection: collection}, datasources.NewMemoryClientStateStore(),
		datasources.StaticFeatureConfig(domain.DefaultFeatureConfig()))

	got, err := gate.Check(ctx, "client")
	require.NoError(t, err)
	assert.False(t, got.Show)
}

func TestNotificationGate_Dismiss(t *testing.T) {
	ctx := testContext()
	clock := newTestClock()
	gate := newTestNotificationGate(clock, domain.DefaultFeatureConfig(), datasources.NewMemoryClientStateStore())

	before, err := gate.Check(ctx, "client")
	require.NoError(t, err)
	require.True(t, before.Show)

	require.NoError(t, gate.Dismiss(ctx, "client", before.Article.ID))

	after, err := gate.Check(ctx, "client")
	require.NoError(t, err)
	assert.False(t, after.Show)

	seen, err := gate.HasSeen(ctx, "client", before.Article.ID)
	require.NoError(t, err)
	assert.True(t, seen)

	// Past the cooldown the same article stays dismissed.
	clock.Advance(48 * time.Hour)
	later, err := gate.Check(ctx, "client")
	require.NoError(t, err)
	assert.False(t, later.Show)

	require.NoError(t, gate.Reset(ctx, "client"))
	reset, err := gate.Check(ctx, "client")
	require.NoError(t, err)
	assert.True(t, reset.Show)
}

func TestNotificationGate_SeenListIsBounded(t *testing.T) {
	ctx := testContext()
	gate := newTestNotificationGate(newTestClock(), domain.DefaultFeatureConfig(), datasources.NewMemoryClientStateStore())

	for i := range domain.MaxSeenArticles + 1 {
		require.NoError(t, gate.MarkSeen(ctx, "client", fmt.Sprintf("article-%d", i)))
	}
	// Marking an already seen article again changes nothing.
	require.NoError(t, gate.MarkSeen(ctx, "client", "article-100"))

	seen, err := gate.SeenArticles(ctx, "client")
	require.NoError(t, err)
	assert.Len(t, seen, domain.MaxSeenArticles)
	assert.NotContains(t, seen, "article-0")
	assert.Equal(t, "article-1", seen[0])
	assert.Equal(t, "article-100", seen[len(seen)-1])
}

func TestNotificationGate_IsCooledDown(t *testing.T) {
	ctx := testContext()
	clock := newTestClock()
	gate := newTestNotificationGate(clock, domain.DefaultFeatureConfig(), datasources.NewMemoryClientStateStore())

	cooled, err := gate.IsCooledDown(ctx, "client")
	require.NoError(t, err)
	assert.True(t, cooled, "never notified")

	require.NoError(t, gate.SetShown(ctx, "client"))
	cooled, err = gate.IsCooledDown(ctx, "client")
	require.NoError(t, err)
	assert.False(t, cooled, "just notified")

	clock.Advance(24 * time.Hour)
	cooled, err = gate.IsCooledDown(ctx, "client")
	require.NoError(t, err)
	assert.False(t, cooled, "exactly at the cooldown boundary")

	clock.Advance(time.Second)
	cooled, err = gate.IsCooledDown(ctx, "client")
	require.NoError(t, err)
	assert.True(t, cooled)
}

func TestNotificationGate_StoreErrors(t *testing.T) {
	ctx := testContext()
	storeErr := errors.New("connection reset")

	store := mocks.NewMockClientStateStore(t)
	store.EXPECT().Get(mock.Anything, LastNotificationKey("client")).Return("", storeErr).Once()
	store.EXPECT().Get(mock.Anything, SeenArticlesKey("client")).Return("", datasources.ErrNotFound).Once()
	store.EXPECT().Set(mock.Anything, SeenArticlesKey("client"), `["a1"]`).Return(storeErr).Once()

	gate := newTestNotificationGate(newTestClock(), domain.DefaultFeatureConfig(), store)

	_, err := gate.Check(ctx, "client")
	require.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "reading last notification time")

	err = gate.Dismiss(ctx, "client", "a1")
	require.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "writing seen articles")
}
