// Package tracker is the facade over classification, deduplication and roll
// tracking. It owns the recent-events list and publishes notifications.
package tracker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/osse101/LootTally_Go/internal/classify"
	"github.com/osse101/LootTally_Go/internal/dedupe"
	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/event"
	"github.com/osse101/LootTally_Go/internal/metrics"
	"github.com/osse101/LootTally_Go/internal/roll"
)

// Service is the single entry point hosts feed inbound lines into, plus the
// read and administrative surface the UI layer consumes.
type Service interface {
	// ProcessLine classifies one raw line and applies its effects.
	// Unclassifiable lines are dropped silently.
	ProcessLine(ctx context.Context, line string, ref *classify.ItemRef)

	// RecentEvents returns a snapshot of accepted events, newest first.
	RecentEvents() []domain.LootEvent
	// RollSessions returns a snapshot of all roll sessions.
	RollSessions() []domain.RollSession

	ClearHistory(ctx context.Context) int
	ClearCompletedRolls(ctx context.Context) int
	ClearAllRolls(ctx context.Context) int
}

type service struct {
	classifier *classify.Classifier
	window     *dedupe.Window
	rolls      *roll.Tracker
	publisher  event.Bus

	mu        sync.Mutex
	recent    []domain.LootEvent
	maxRecent int
}

// NewService creates the tracking facade. maxRecent bounds the recent-events
// list; non-positive values fall back to DefaultMaxRecentEvents.
func NewService(classifier *classify.Classifier, window *dedupe.Window, rolls *roll.Tracker, publisher event.Bus, maxRecent int) Service {
	if maxRecent <= 0 {
		maxRecent = DefaultMaxRecentEvents
	}

	return &service{
		classifier: classifier,
		window:     window,
		rolls:      rolls,
		publisher:  publisher,
		maxRecent:  maxRecent,
	}
}

func (s *service) ProcessLine(ctx context.Context, line string, ref *classify.ItemRef) {
	metrics.LinesIngested.Inc()

	result, ok := s.classifier.Classify(line, ref)
	if !ok {
		return
	}

	switch {
	case result.Roll != nil:
		s.applyRollUpdate(ctx, result.Roll)
	case result.Event != nil:
		s.applyLootEvent(ctx, result.Event)
	}
}

func (s *service) applyRollUpdate(ctx context.Context, update *classify.RollUpdate) {
	item := roll.ItemIdentity{
		ItemID:   update.ItemID,
		IconID:   update.IconID,
		Rarity:   update.Rarity,
		ItemName: update.ItemName,
	}

	switch update.Kind {
	case classify.SessionOpened:
		s.rolls.OpenSession(item)
		s.publishRollsUpdated(ctx, domain.RollsUpdateSessionOpened, item)
	case classify.RollRecorded:
		s.rolls.RecordRoll(item, update.Player, update.RollKind, update.Value)
		s.publishRollsUpdated(ctx, domain.RollsUpdateRollRecorded, item)
	}
}

func (s *service) applyLootEvent(ctx context.Context, loot *domain.LootEvent) {
	key := dedupe.Key{
		ItemID:      loot.ItemID,
		PlayerName:  loot.PlayerName,
		Quantity:    loot.Quantity,
		HighQuality: loot.HighQuality,
	}
	if !s.window.Accept(key) {
		metrics.LootEventsSuppressed.Inc()
		return
	}

	// Winner arbitration runs before the event is appended so the stored
	// copy already carries its roll attribution.
	if won, ok := s.rolls.RecordWinner(loot.ItemID, loot.PlayerName); ok {
		loot.RollKind = won.Kind
		loot.RollValue = won.Value
		s.publishRollsUpdated(ctx, domain.RollsUpdateWinnerRecorded, roll.ItemIdentity{
			ItemID:   loot.ItemID,
			ItemName: loot.ItemName,
		})
	}

	metrics.LootEventsAccepted.WithLabelValues(loot.Source.String()).Inc()

	s.mu.Lock()
	s.recent = append([]domain.LootEvent{*loot}, s.recent...)
	if len(s.recent) > s.maxRecent {
		s.recent = s.recent[:s.maxRecent]
	}
	s.mu.Unlock()

	if err := s.publisher.Publish(ctx, event.NewLootObtainedEvent(*loot)); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(domain.EventTypeLootObtained).Inc()
		slog.Error(LogMsgPublishFailed, "event_type", domain.EventTypeLootObtained, "error", err)
	}
}

func (s *service) publishRollsUpdated(ctx context.Context, reason string, item roll.ItemIdentity) {
	evt := event.NewRollsUpdatedEvent(reason, item.ItemID, item.ItemName, s.rolls.OpenCount())
	if err := s.publisher.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(domain.EventTypeRollsUpdated).Inc()
		slog.Error(LogMsgPublishFailed, "event_type", domain.EventTypeRollsUpdated, "error", err)
	}
}

func (s *service) RecentEvents() []domain.LootEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LootEvent, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *service) RollSessions() []domain.RollSession {
	return s.rolls.Snapshot()
}

func (s *service) ClearHistory(ctx context.Context) int {
	s.mu.Lock()
	removed := len(s.recent)
	s.recent = nil
	s.mu.Unlock()

	slog.Info(LogMsgHistoryCleared, "removed", removed)
	return removed
}

func (s *service) ClearCompletedRolls(ctx context.Context) int {
	removed := s.rolls.ClearCompleted()
	s.publishRollsUpdated(ctx, domain.RollsUpdateCleared, roll.ItemIdentity{})
	return removed
}

func (s *service) ClearAllRolls(ctx context.Context) int {
	removed := s.rolls.ClearAll()
	s.publishRollsUpdated(ctx, domain.RollsUpdateCleared, roll.ItemIdentity{})
	return removed
}
