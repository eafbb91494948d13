package domain

import "time"

// FeatureConfig is the read-only site feature configuration.
// Field names match the admin-config.json document the site ships with.
type FeatureConfig struct {
	Features struct {
		JournalNotifications struct {
			Enabled       bool `json:"enabled" yaml:"enabled"`
			GlobalDisable bool `json:"globalDisable" yaml:"globalDisable"`
			CooldownHours int  `json:"cooldownHours" yaml:"cooldownHours"`
			// MaxNotificationsPerDay is carried for compatibility; only the cooldown is enforced.
			MaxNotificationsPerDay int `json:"maxNotificationsPerDay" yaml:"maxNotificationsPerDay"`
		} `json:"journalNotifications" yaml:"journalNotifications"`
		NewsSearch struct {
			Enabled    bool `json:"enabled" yaml:"enabled"`
			MaxResults int  `json:"maxResults" yaml:"maxResults"`
		} `json:"newsSearch" yaml:"newsSearch"`
		NewsFeed struct {
			Enabled         bool `json:"enabled" yaml:"enabled"`
			ArticlesPerPage int  `json:"articlesPerPage" yaml:"articlesPerPage"`
			ShowImages      bool `json:"showImages" yaml:"showImages"`
		} `json:"newsFeed" yaml:"newsFeed"`
	} `json:"features" yaml:"features"`
	Journal struct {
		RSSURL               string `json:"rssUrl" yaml:"rssUrl"`
		FetchIntervalMinutes int    `json:"fetchIntervalMinutes" yaml:"fetchIntervalMinutes"`
		CacheExpiryHours     int    `json:"cacheExpiryHours" yaml:"cacheExpiryHours"`
	} `json:"journal" yaml:"journal"`
}

// DefaultFeatureConfig is used whenever the configuration document cannot be read.
func DefaultFeatureConfig() FeatureConfig {
	var c FeatureConfig
	c.Features.JournalNotifications.Enabled = true
	c.Features.JournalNotifications.GlobalDisable = false
	c.Features.JournalNotifications.CooldownHours = 24
	c.Features.JournalNotifications.MaxNotificationsPerDay = 3
	c.Features.NewsSearch.Enabled = true
	c.Features.NewsSearch.MaxResults = 20
	c.Features.NewsFeed.Enabled = true
	c.Features.NewsFeed.ArticlesPerPage = 5
	c.Features.NewsFeed.ShowImages = true
	c.Journal.FetchIntervalMinutes = 60
	c.Journal.CacheExpiryHours = 6
	return c
}

func (c FeatureConfig) NotificationsEnabled() bool {
	n := c.Features.JournalNotifications
	return n.Enabled && !n.GlobalDisable
}

func (c FeatureConfig) NotificationCooldown() time.Duration {
	if c.Features.JournalNotifications.CooldownHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Features.JournalNotifications.CooldownHours) * time.Hour
}

func (c FeatureConfig) SearchLimit() int {
	if c.Features.NewsSearch.MaxResults <= 0 {
		return 20
	}
	return c.Features.NewsSearch.MaxResults
}

func (c FeatureConfig) ArticlesPerPage() int {
	if c.Features.NewsFeed.ArticlesPerPage <= 0 {
		return 5
	}
	return c.Features.NewsFeed.ArticlesPerPage
}

func (c FeatureConfig) RefreshInterval() time.Duration {
	if c.Journal.FetchIntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Journal.FetchIntervalMinutes) * time.Minute
}

func (c FeatureConfig) SnapshotMaxAge() time.Duration {
	if c.Journal.CacheExpiryHours <= 0 {
		return 6 * time.Hour
	}
	return time.Duration(c.Journal.CacheExpiryHours) * time.Hour
}
