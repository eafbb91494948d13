package domain

import (
	"slices"
	"time"
)

// MaxSeenArticles bounds how many article IDs a client remembers as seen.
const MaxSeenArticles = 100

// AppendSeen records id as seen, evicting the oldest IDs once the list exceeds limit.
// Already-seen IDs leave the list unchanged.
func AppendSeen(seen []string, id string, limit int) []string {
	if slices.Contains(seen, id) {
		return seen
	}
	out := append(slices.Clone(seen), id)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// CooledDown reports whether strictly more than cooldown has elapsed since lastShown.
func CooledDown(lastShown, now time.Time, cooldown time.Duration) bool {
	return now.Sub(lastShown) > cooldown
}

// Notification is the outcome of a notification eligibility check.
type Notification struct {
	Show    bool     `json:"show"`
	Article *Article `json:"article,omitempty"`
}
