package domain

import "time"

// LootSource categorizes where an acquired item came from.
// The classifier assigns it from the message shape; Unknown is the
// fallback for shapes that carry no acquisition context.
type LootSource int

const (
	SourceUnknown LootSource = iota
	SourceMonster
	SourceChest
	SourceGathering
	SourceQuest
	SourceCrafting
	SourcePurchase
	SourceExtraction
	SourceExchange
	SourceDutyRouletteBonus
	SourceOther
)

// String returns the snake_case name used in JSON payloads and metrics labels.
func (s LootSource) String() string {
	switch s {
	case SourceMonster:
		return "monster"
	case SourceChest:
		return "chest"
	case SourceGathering:
		return "gathering"
	case SourceQuest:
		return "quest"
	case SourceCrafting:
		return "crafting"
	case SourcePurchase:
		return "purchase"
	case SourceExtraction:
		return "extraction"
	case SourceExchange:
		return "exchange"
	case SourceDutyRouletteBonus:
		return "duty_roulette_bonus"
	case SourceOther:
		return "other"
	default:
		return "unknown"
	}
}

// LootEvent is one resolved item-acquisition occurrence.
// Events are immutable once constructed; EventID is process-unique so
// downstream consumers can recognize "this exact event" exactly once.
type LootEvent struct {
	EventID     string     `json:"event_id"`
	ItemID      uint32     `json:"item_id"`
	IconID      uint32     `json:"icon_id"`
	Rarity      int        `json:"rarity"`
	ItemName    string     `json:"item_name"`
	Quantity    uint32     `json:"quantity"`
	HighQuality bool       `json:"high_quality"`
	PlayerName  string     `json:"player_name"`
	ContentID   uint64     `json:"content_id,omitempty"` // zero unless the local actor acquired the item
	IsOwn       bool       `json:"is_own"`
	Source      LootSource `json:"source"`
	ZoneID      uint32     `json:"zone_id"`
	ZoneName    string     `json:"zone_name"`
	RollKind    RollKind   `json:"roll_kind,omitempty"`
	RollValue   int        `json:"roll_value,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}
