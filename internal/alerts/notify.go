package alerts

import (
	"fmt"
	"log"
	"sync"
	"time"

	"nba-prop-bets/internal/analysis"
)

// Notifier logs value alerts in watch mode, deduping repeats of the same
// bet within a cooldown window so a quote that stays live for an hour does
// not produce an hour of identical alerts.
type Notifier struct {
	mu         sync.Mutex
	lastAlerts map[string]time.Time
	cooldown   time.Duration
}

// NewNotifier creates a new notifier.
func NewNotifier(cooldown time.Duration) *Notifier {
	return &Notifier{
		lastAlerts: make(map[string]time.Time),
		cooldown:   cooldown,
	}
}

// AlertValue announces a recommendation that cleared the alert threshold.
// Returns true if the alert fired, false if it was suppressed by cooldown.
func (n *Notifier) AlertValue(rec analysis.Recommendation) bool {
	key := alertKey(rec)

	n.mu.Lock()
	if lastTime, ok := n.lastAlerts[key]; ok {
		if time.Since(lastTime) < n.cooldown {
			n.mu.Unlock()
			return false
		}
	}
	n.lastAlerts[key] = time.Now()
	n.mu.Unlock()

	log.Printf("+EV PROP: %s | prob=%.1f%% ev=%.2f units=%.2f",
		analysis.FormatRecommendation(rec, analysis.StyleDetailed),
		rec.Probability*100, rec.EV, rec.Units,
	)
	return true
}

// LogError logs an operational error with context.
func (n *Notifier) LogError(context string, err error) {
	log.Printf("ERROR %s: %v", context, err)
}

// CleanupOldAlerts drops dedupe entries older than twice the cooldown so
// the map does not grow without bound across a long watch session.
func (n *Notifier) CleanupOldAlerts() {
	n.mu.Lock()
	defer n.mu.Unlock()

	cutoff := time.Now().Add(-2 * n.cooldown)
	for key, lastTime := range n.lastAlerts {
		if lastTime.Before(cutoff) {
			delete(n.lastAlerts, key)
		}
	}
}

func alertKey(rec analysis.Recommendation) string {
	return fmt.Sprintf("%s-%s-%s-%.1f-%s", rec.Player, rec.Stat, rec.Direction, rec.Line, rec.Book)
}
