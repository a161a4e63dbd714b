package classify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/playername"
	"github.com/osse101/LootTally_Go/internal/quantity"
)

// matchLootList handles "A Demon Boots has been added to the loot list."
// and opens a roll session without producing a LootEvent.
func (c *Classifier) matchLootList(line string, ref *ItemRef) (Result, bool) {
	idx := strings.Index(line, phraseLootList)
	if idx < 0 {
		return Result{}, false
	}

	extracted := quantity.Extract(line[:idx])
	id, icon, rarity, name := c.resolveRollItem(extracted.ItemName, ref)

	return Result{Roll: &RollUpdate{
		Kind:     SessionOpened,
		ItemID:   id,
		IconID:   icon,
		Rarity:   rarity,
		ItemName: name,
	}}, true
}

// matchRoll handles "You roll Need on the Demon Boots. 87!" and
// "AstridVane rolls Greed on the Demon Boots. 42!".
func (c *Classifier) matchRoll(line string, ref *ItemRef) (Result, bool) {
	var rawPlayer, rest string
	local := strings.HasPrefix(line, phraseRollLocal)
	if local {
		rest = line[len(phraseRollLocal):]
	} else {
		idx := strings.Index(line, phraseRollOther)
		if idx < 0 {
			return Result{}, false
		}
		rawPlayer = line[:idx]
		rest = line[idx+len(phraseRollOther):]
	}

	onIdx := strings.Index(rest, phraseRollOn)
	if onIdx < 0 {
		return Result{}, false
	}

	// The kind word sits between the roll verb and " on "; item names
	// containing "Need" or "Greed" must not influence detection.
	kind := rollKind(rest[:onIdx])
	if kind == domain.RollNone {
		return Result{}, false
	}

	var player string
	if local {
		info, ok := c.localActor()
		if !ok {
			return Result{}, true
		}
		player = info.Name
	} else {
		player = playername.Normalize(rawPlayer)
	}

	itemName, value := splitRollTail(rest[onIdx+len(phraseRollOn):])
	id, icon, rarity, name := c.resolveRollItem(itemName, ref)

	return Result{Roll: &RollUpdate{
		Kind:     RollRecorded,
		ItemID:   id,
		IconID:   icon,
		Rarity:   rarity,
		ItemName: name,
		Player:   player,
		RollKind: kind,
		Value:    value,
	}}, true
}

// matchFishing handles "You land a goldfish measuring 8.2 ilms!" with the
// measured size folded into the item name.
func (c *Classifier) matchFishing(line string, ref *ItemRef) (Result, bool) {
	if !strings.HasPrefix(line, phraseFishingLand) || !strings.Contains(line, phraseFishingIlms) {
		return Result{}, false
	}

	rest := line[len(phraseFishingLand):]
	sizeIdx := strings.Index(rest, phraseFishingSize)
	if sizeIdx < 0 {
		return Result{}, false
	}

	sizePart := rest[sizeIdx+len(phraseFishingSize):]
	ilmsIdx := strings.Index(sizePart, phraseFishingIlms)
	if ilmsIdx < 0 {
		return Result{}, false
	}

	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	extracted := quantity.Extract(rest[:sizeIdx])
	event := c.newEvent(extracted.ItemName, ref, 1, extracted.HighQuality, info.Name, true, domain.SourceGathering)
	event.ItemName = fmt.Sprintf("%s (%s ilms)", event.ItemName, sizePart[:ilmsIdx])

	return Result{Event: event}, true
}

// matchObtain handles "You obtain 2 potions.", "AstridVane obtains a hi-potion."
// and "You synthesize a Mythril Ingot.".
func (c *Classifier) matchObtain(line string, ref *ItemRef) (Result, bool) {
	switch {
	case strings.HasPrefix(line, phraseObtainSelf):
		return c.obtainEvent(line[len(phraseObtainSelf):], ref, domain.SourceUnknown)

	case strings.HasPrefix(line, phraseSynthesize):
		return c.obtainEvent(line[len(phraseSynthesize):], ref, domain.SourceCrafting)
	}

	idx := strings.Index(line, phraseObtainOther)
	if idx < 0 {
		return Result{}, false
	}

	player := playername.Normalize(line[:idx])
	extracted := quantity.Extract(line[idx+len(phraseObtainOther):])
	event := c.newEvent(extracted.ItemName, ref, extracted.Quantity, extracted.HighQuality, player, false, domain.SourceUnknown)

	return Result{Event: event}, true
}

// matchPassive handles "3 potions are obtained." and "A ring is obtained.",
// always attributed to the local actor.
func (c *Classifier) matchPassive(line string, ref *ItemRef) (Result, bool) {
	idx := strings.Index(line, phrasePassiveIs)
	if idx < 0 {
		idx = strings.Index(line, phrasePassiveAre)
	}
	if idx < 0 {
		return Result{}, false
	}

	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	extracted := quantity.Extract(line[:idx])
	event := c.newEvent(extracted.ItemName, ref, extracted.Quantity, extracted.HighQuality, info.Name, true, domain.SourceUnknown)

	return Result{Event: event}, true
}

// matchInventoryAdd handles "A Potion is added to your inventory.".
func (c *Classifier) matchInventoryAdd(line string, ref *ItemRef) (Result, bool) {
	idx := strings.Index(line, phraseInventoryAdd)
	if idx < 0 {
		return Result{}, false
	}

	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	extracted := quantity.Extract(line[:idx])
	event := c.newEvent(extracted.ItemName, ref, 1, extracted.HighQuality, info.Name, true, domain.SourceOther)

	return Result{Event: event}, true
}

// matchExtraction handles "You successfully extract a Savage Aim Materia
// from the Leather Jacket.". The from-clause is dropped from the item name.
func (c *Classifier) matchExtraction(line string, ref *ItemRef) (Result, bool) {
	idx := strings.Index(line, phraseExtraction)
	if idx < 0 {
		return Result{}, false
	}

	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	rest := line[idx+len(phraseExtraction):]
	if fromIdx := strings.Index(rest, phraseExtractFrom); fromIdx >= 0 {
		rest = rest[:fromIdx]
	}

	extracted := quantity.Extract(rest)
	event := c.newEvent(extracted.ItemName, ref, 1, extracted.HighQuality, info.Name, true, domain.SourceExtraction)

	return Result{Event: event}, true
}

// matchExchange handles "You exchange 2 tomestones for a Radiant Sword.".
// Only the received side produces an event.
func (c *Classifier) matchExchange(line string, ref *ItemRef) (Result, bool) {
	if !strings.HasPrefix(line, phraseExchange) {
		return Result{}, false
	}

	rest := line[len(phraseExchange):]
	forIdx := strings.Index(rest, phraseExchangeFor)
	if forIdx < 0 {
		return Result{}, false
	}

	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	extracted := quantity.Extract(rest[forIdx+len(phraseExchangeFor):])
	event := c.newEvent(extracted.ItemName, ref, extracted.Quantity, extracted.HighQuality, info.Name, true, domain.SourceExchange)

	return Result{Event: event}, true
}

// matchDutyBonus handles "A bonus of 1,500 gil has been awarded for being
// matched with a party in progress.".
func (c *Classifier) matchDutyBonus(line string, ref *ItemRef) (Result, bool) {
	if !strings.HasPrefix(line, phraseBonusPrefix) {
		return Result{}, false
	}

	rest := line[len(phraseBonusPrefix):]
	awardIdx := strings.Index(rest, phraseBonusAwarded)
	if awardIdx < 0 {
		return Result{}, false
	}

	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	amount := strings.TrimSuffix(rest[:awardIdx], phraseGilSuffix)
	qty := parseGroupedAmount(amount)

	gilRef := &ItemRef{ID: catalog.GilItemID, Name: "gil"}
	event := c.newEvent("gil", gilRef, qty, false, info.Name, true, domain.SourceDutyRouletteBonus)

	return Result{Event: event}, true
}

// obtainEvent builds the LootEvent for the self-obtain shapes.
func (c *Classifier) obtainEvent(remainder string, ref *ItemRef, source domain.LootSource) (Result, bool) {
	info, ok := c.localActor()
	if !ok {
		return Result{}, true
	}

	extracted := quantity.Extract(remainder)
	event := c.newEvent(extracted.ItemName, ref, extracted.Quantity, extracted.HighQuality, info.Name, true, source)

	return Result{Event: event}, true
}

// rollKind maps the word between the roll verb and " on " to its category.
// The match is exact, never a substring scan over the whole line.
func rollKind(word string) domain.RollKind {
	switch strings.TrimSpace(word) {
	case phraseRollNeed:
		return domain.RollNeed
	case phraseRollGreed:
		return domain.RollGreed
	default:
		return domain.RollNone
	}
}

// splitRollTail splits "the Demon Boots. 87!" into the item name and the
// rolled value. A malformed value falls back to zero rather than failing
// the line.
func splitRollTail(tail string) (string, int) {
	name := tail
	value := 0

	if dotIdx := strings.LastIndex(tail, ". "); dotIdx >= 0 {
		name = tail[:dotIdx]
		raw := strings.TrimSuffix(strings.TrimSpace(tail[dotIdx+2:]), "!")
		if v, err := strconv.Atoi(raw); err == nil {
			value = v
		}
	}

	name = strings.TrimSpace(strings.TrimSuffix(name, "."))
	if strings.HasPrefix(strings.ToLower(name), "the ") {
		name = name[4:]
	}
	return name, value
}

// parseGroupedAmount parses a positive integer that may use digit-grouping
// commas, defaulting to 1 when malformed.
func parseGroupedAmount(s string) uint32 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 1
	}
	return uint32(v)
}
