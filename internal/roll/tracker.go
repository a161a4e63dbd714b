// Package roll tracks need/greed roll sessions and arbitrates winners.
package roll

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/metrics"
)

// ItemIdentity carries the catalog fields a new session is stamped with.
type ItemIdentity struct {
	ItemID   uint32
	IconID   uint32
	Rarity   int
	ItemName string
}

// Tracker owns the roll session collection. All methods are safe for
// concurrent use; reads receive deep copies, never live references.
type Tracker struct {
	mu       sync.Mutex
	sessions []*domain.RollSession

	now func() time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// OpenSession starts a new session for a dropped item. Several sessions may
// be open for the same item ID at once; each represents a distinct drop.
func (t *Tracker) OpenSession(item ItemIdentity) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.open(item)
	slog.Info(LogMsgSessionOpened, "item_id", item.ItemID, "item_name", item.ItemName)
}

// RecordRoll records a participant's roll against the first session for the
// item that does not yet hold a roll from this player. When no such session
// exists one is opened defensively, since the opening line may have been
// missed. The player name must already be normalized.
func (t *Tracker) RecordRoll(item ItemIdentity, player string, kind domain.RollKind, value int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session := t.findForRoll(item.ItemID, player)
	if session == nil {
		slog.Warn(LogMsgDefensiveSession, "item_id", item.ItemID, "item_name", item.ItemName, "player", player)
		session = t.open(item)
	}

	session.Rolls[player] = domain.Roll{Kind: kind, Value: value}
	metrics.RollsRecorded.WithLabelValues(kind.String()).Inc()
}

// RecordWinner marks the obtaining player as winner of the first open
// session for the item. Matching is exact first, then falls back to prefix
// matching where a recorded roller's name starts with the obtainer's name,
// tolerating display truncation of the obtained line. Returns the winner's
// roll and whether any session was resolved.
func (t *Tracker) RecordWinner(itemID uint32, obtainer string) (domain.Roll, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session := t.firstOpen(itemID)
	if session == nil {
		return domain.Roll{}, false
	}

	winner, ok := matchRoller(session, obtainer)
	if !ok {
		slog.Warn(LogMsgWinnerUnmatched, "item_id", itemID, "obtainer", obtainer)
		return domain.Roll{}, false
	}

	session.Winner = winner
	metrics.RollWinnersMatched.Inc()
	slog.Info(LogMsgWinnerRecorded, "item_id", itemID, "winner", winner)
	return session.Rolls[winner], true
}

// ClearCompleted removes every session that has a winner, returning how many
// were removed.
func (t *Tracker) ClearCompleted() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.sessions[:0]
	removed := 0
	for _, s := range t.sessions {
		if s.Open() {
			kept = append(kept, s)
		} else {
			removed++
		}
	}
	t.sessions = kept

	slog.Info(LogMsgSessionsCleared, "removed", removed, "remaining", len(t.sessions))
	return removed
}

// ClearAll removes every session, returning how many were removed.
func (t *Tracker) ClearAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := len(t.sessions)
	t.sessions = nil

	slog.Info(LogMsgSessionsCleared, "removed", removed, "remaining", 0)
	return removed
}

// Snapshot returns deep copies of all sessions in creation order.
func (t *Tracker) Snapshot() []domain.RollSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.RollSession, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, s.Clone())
	}
	return out
}

// OpenCount returns the number of sessions still awaiting a winner.
func (t *Tracker) OpenCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	open := 0
	for _, s := range t.sessions {
		if s.Open() {
			open++
		}
	}
	return open
}

// open appends a new session. Caller holds the lock.
func (t *Tracker) open(item ItemIdentity) *domain.RollSession {
	session := &domain.RollSession{
		ItemID:    item.ItemID,
		IconID:    item.IconID,
		Rarity:    item.Rarity,
		ItemName:  item.ItemName,
		Rolls:     make(map[string]domain.Roll),
		CreatedAt: t.now(),
	}
	t.sessions = append(t.sessions, session)
	return session
}

// findForRoll returns the first session for the item that has not yet
// recorded this player's roll. Won sessions are eligible too, so late roll
// lines arriving after the obtain line still land somewhere sensible.
// Caller holds the lock.
func (t *Tracker) findForRoll(itemID uint32, player string) *domain.RollSession {
	for _, s := range t.sessions {
		if s.ItemID != itemID {
			continue
		}
		if _, rolled := s.Rolls[player]; !rolled {
			return s
		}
	}
	return nil
}

// firstOpen returns the first winnerless session for the item.
// Caller holds the lock.
func (t *Tracker) firstOpen(itemID uint32) *domain.RollSession {
	for _, s := range t.sessions {
		if s.ItemID == itemID && s.Open() {
			return s
		}
	}
	return nil
}

// matchRoller resolves the obtaining player against the session's recorded
// rollers. Exact match wins; otherwise the first roller (in name order, for
// determinism) whose recorded name starts with the obtainer's name is taken,
// tolerating truncated obtain lines. The reverse direction is never matched.
func matchRoller(session *domain.RollSession, obtainer string) (string, bool) {
	if obtainer == "" {
		return "", false
	}
	if _, ok := session.Rolls[obtainer]; ok {
		return obtainer, true
	}

	names := make([]string, 0, len(session.Rolls))
	for name := range session.Rolls {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.HasPrefix(name, obtainer) {
			return name, true
		}
	}
	return "", false
}
