package alerts

import (
	"testing"
	"time"

	"nba-prop-bets/internal/analysis"
)

func sampleRec() analysis.Recommendation {
	return analysis.Recommendation{
		Player:      "Stephen Curry",
		Stat:        analysis.StatPoints,
		Direction:   analysis.Over,
		Line:        24.5,
		Odds:        1140,
		Probability: 0.5398,
		EV:          5.69,
		FairValue:   -117,
		Units:       0.12,
		Book:        analysis.BookDraftKings,
		IsLongshot:  true,
	}
}

func TestAlertValueCooldown(t *testing.T) {
	n := NewNotifier(time.Hour)

	if !n.AlertValue(sampleRec()) {
		t.Error("first alert should fire")
	}
	if n.AlertValue(sampleRec()) {
		t.Error("repeat alert within cooldown should be suppressed")
	}

	// A different bet is a different key and fires immediately.
	other := sampleRec()
	other.Direction = analysis.Under
	if !n.AlertValue(other) {
		t.Error("alert for a different direction should fire")
	}
}

func TestAlertValueAfterCooldown(t *testing.T) {
	n := NewNotifier(10 * time.Millisecond)

	if !n.AlertValue(sampleRec()) {
		t.Fatal("first alert should fire")
	}
	time.Sleep(20 * time.Millisecond)
	if !n.AlertValue(sampleRec()) {
		t.Error("alert after cooldown should fire again")
	}
}

func TestCleanupOldAlerts(t *testing.T) {
	n := NewNotifier(5 * time.Millisecond)

	n.AlertValue(sampleRec())
	time.Sleep(20 * time.Millisecond)
	n.CleanupOldAlerts()

	n.mu.Lock()
	size := len(n.lastAlerts)
	n.mu.Unlock()
	if size != 0 {
		t.Errorf("dedupe map has %d entries after cleanup, want 0", size)
	}
}
