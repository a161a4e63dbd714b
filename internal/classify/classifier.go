// Package classify turns raw game-client text lines into structured loot
// events and roll session updates.
package classify

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LootTally_Go/internal/actor"
	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/metrics"
)

// ItemRef is the authoritative item reference the host attaches when a line
// carries a clickable item link. Always preferred over text parsing.
type ItemRef struct {
	ID   uint32
	Name string
}

// RollUpdateKind discriminates the roll-side outputs of classification.
type RollUpdateKind int

const (
	SessionOpened RollUpdateKind = iota
	RollRecorded
)

// RollUpdate is a classified roll-session mutation. Item identity fields are
// resolved where possible; an unresolved item keeps the text-derived name
// with zero identity.
type RollUpdate struct {
	Kind     RollUpdateKind
	ItemID   uint32
	IconID   uint32
	Rarity   int
	ItemName string
	Player   string
	RollKind domain.RollKind
	Value    int
}

// Result is the output of classifying one line. At most one field is set.
type Result struct {
	Event *domain.LootEvent
	Roll  *RollUpdate
}

// matcher pairs a shape name with its predicate-and-extract function.
// A matcher returns (result, true) when its shape matched, even if the
// match produced no output (e.g. missing actor identity).
type matcher struct {
	shape string
	fn    func(c *Classifier, line string, ref *ItemRef) (Result, bool)
}

// Classifier evaluates message shapes in priority order. Stateless across
// lines; safe for concurrent use.
type Classifier struct {
	resolver *catalog.Resolver
	actor    actor.Provider
	matchers []matcher

	now func() time.Time
}

// NewClassifier creates a Classifier over the given catalog resolver and
// local-actor identity provider.
func NewClassifier(resolver *catalog.Resolver, provider actor.Provider) *Classifier {
	c := &Classifier{
		resolver: resolver,
		actor:    provider,
		now:      time.Now,
	}

	// Overlapping substrings make this order load-bearing: the loot-list
	// and roll shapes must run before the generic obtain shapes.
	c.matchers = []matcher{
		{ShapeLootList, (*Classifier).matchLootList},
		{ShapeRoll, (*Classifier).matchRoll},
		{ShapeFishing, (*Classifier).matchFishing},
		{ShapeObtain, (*Classifier).matchObtain},
		{ShapePassive, (*Classifier).matchPassive},
		{ShapeInventoryAdd, (*Classifier).matchInventoryAdd},
		{ShapeExtraction, (*Classifier).matchExtraction},
		{ShapeExchange, (*Classifier).matchExchange},
		{ShapeDutyBonus, (*Classifier).matchDutyBonus},
	}

	return c
}

// Classify evaluates the line against each shape in priority order and
// returns the first match's output. The second return reports whether any
// shape matched; unmatched lines are expected for most chat traffic.
func (c *Classifier) Classify(line string, ref *ItemRef) (Result, bool) {
	for _, m := range c.matchers {
		if result, ok := m.fn(c, line, ref); ok {
			metrics.LinesClassified.WithLabelValues(m.shape).Inc()
			return result, true
		}
	}
	return Result{}, false
}

// resolveIdentity resolves an item reference or free-text name to catalog
// identity fields. Unresolved lookups keep the best available name with
// zero identity rather than failing the line.
func (c *Classifier) resolveIdentity(name string, ref *ItemRef) (id, icon uint32, rarity int, resolvedName string, hq bool) {
	if ref != nil {
		rec, refHQ, err := c.resolver.ResolveID(ref.ID)
		if err == nil {
			return rec.ID, rec.IconID, rec.Rarity, rec.Name, refHQ
		}
		c.noteUnresolved(ref.Name, err)
		fallback := ref.Name
		if fallback == "" {
			fallback = name
		}
		return 0, 0, 0, fallback, refHQ
	}

	rec, err := c.resolver.ResolveName(name)
	if err != nil {
		c.noteUnresolved(name, err)
		return 0, 0, 0, name, false
	}
	return rec.ID, rec.IconID, rec.Rarity, rec.Name, false
}

func (c *Classifier) noteUnresolved(name string, err error) {
	if errors.Is(err, domain.ErrItemNotFound) || errors.Is(err, domain.ErrCatalogUnavailable) {
		metrics.UnresolvedLookups.Inc()
		slog.Debug(LogMsgUnresolvedItem, "name", name, "error", err)
	}
}

// newEvent assembles a LootEvent with identity resolved and actor context
// stamped. playerName must already be normalized.
func (c *Classifier) newEvent(name string, ref *ItemRef, quantity uint32, hq bool, playerName string, isOwn bool, source domain.LootSource) *domain.LootEvent {
	id, icon, rarity, resolvedName, refHQ := c.resolveIdentity(name, ref)

	event := &domain.LootEvent{
		EventID:     uuid.NewString(),
		ItemID:      id,
		IconID:      icon,
		Rarity:      rarity,
		ItemName:    resolvedName,
		Quantity:    quantity,
		HighQuality: hq || refHQ,
		PlayerName:  playerName,
		IsOwn:       isOwn,
		Source:      source,
		Timestamp:   c.now(),
	}

	if info, ok := c.actor.Info(); ok {
		event.ZoneID = info.ZoneID
		event.ZoneName = info.ZoneName
		if isOwn {
			event.ContentID = info.ContentID
		}
	}

	return event
}

// localActor returns the current local-actor identity. Shapes that need it
// and find none skip their line; that is the only abort condition.
func (c *Classifier) localActor() (actor.Info, bool) {
	info, ok := c.actor.Info()
	if !ok || info.Name == "" {
		slog.Debug(LogMsgNoActivePlayer)
		return actor.Info{}, false
	}
	return info, true
}

// resolveRollItem resolves item identity for a roll update, preferring the
// structured reference.
func (c *Classifier) resolveRollItem(name string, ref *ItemRef) (uint32, uint32, int, string) {
	id, icon, rarity, resolvedName, _ := c.resolveIdentity(name, ref)
	return id, icon, rarity, resolvedName
}
