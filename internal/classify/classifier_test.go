package classify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootTally_Go/internal/actor"
	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/domain"
)

// stubLookup is a minimal catalog for classifier tests.
type stubLookup struct {
	items []domain.CatalogRecord
}

func (s *stubLookup) ByID(id uint32) (*domain.CatalogRecord, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], true
		}
	}
	return nil, false
}

func (s *stubLookup) ByName(name string) (*domain.CatalogRecord, bool) {
	for i := range s.items {
		if strings.EqualFold(s.items[i].Name, name) {
			return &s.items[i], true
		}
	}
	return nil, false
}

func (s *stubLookup) ByNameSubstring(name string) (*domain.CatalogRecord, bool) {
	query := strings.ToLower(name)
	for i := range s.items {
		if strings.Contains(strings.ToLower(s.items[i].Name), query) {
			return &s.items[i], true
		}
	}
	return nil, false
}

func (s *stubLookup) EventItemByName(name string) (*domain.CatalogRecord, bool) {
	return nil, false
}

func newTestClassifier(t *testing.T) (*Classifier, *actor.State) {
	t.Helper()

	lookup := &stubLookup{items: []domain.CatalogRecord{
		{ID: catalog.GilItemID, IconID: 10, Rarity: 1, Name: "Gil"},
		{ID: 3, IconID: 30, Rarity: 2, Name: "Mythril Ore"},
		{ID: 7, IconID: 70, Rarity: 1, Name: "Potion"},
		{ID: 42, IconID: 420, Rarity: 2, Name: "Demon Boots"},
		{ID: 55, IconID: 550, Rarity: 1, Name: "Goldfish"},
	}}
	resolver := catalog.NewResolver(lookup, 16, time.Minute)

	state := actor.NewState()
	state.Set(actor.Info{
		Name:      "Astrid Vane",
		ContentID: 9001,
		ZoneID:    128,
		ZoneName:  "Limsa Lominsa",
	})

	return NewClassifier(resolver, state), state
}

func TestClassifyObtainSelf(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You obtain a Mythril Ore.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, uint32(3), event.ItemID)
	assert.Equal(t, "Mythril Ore", event.ItemName)
	assert.Equal(t, uint32(1), event.Quantity)
	assert.Equal(t, "Astrid Vane", event.PlayerName)
	assert.True(t, event.IsOwn)
	assert.Equal(t, uint64(9001), event.ContentID)
	assert.Equal(t, uint32(128), event.ZoneID)
	assert.Equal(t, "Limsa Lominsa", event.ZoneName)
	assert.NotEmpty(t, event.EventID)
}

func TestClassifyObtainOther(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("KupoMoogleBehemoth obtains 2 potions.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, "Kupo Moogle", event.PlayerName)
	assert.Equal(t, uint32(7), event.ItemID)
	assert.Equal(t, "Potion", event.ItemName)
	assert.Equal(t, uint32(2), event.Quantity)
	assert.False(t, event.IsOwn)
	assert.Zero(t, event.ContentID)
}

func TestClassifySynthesize(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You synthesize a Potion.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)
	assert.Equal(t, domain.SourceCrafting, result.Event.Source)
}

func TestClassifyLootList(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("A Demon Boots has been added to the loot list.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Roll)
	require.Nil(t, result.Event)

	assert.Equal(t, SessionOpened, result.Roll.Kind)
	assert.Equal(t, uint32(42), result.Roll.ItemID)
	assert.Equal(t, "Demon Boots", result.Roll.ItemName)
}

func TestClassifyRollLocal(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You roll Need on the Demon Boots. 87!", nil)
	require.True(t, ok)
	require.NotNil(t, result.Roll)

	roll := result.Roll
	assert.Equal(t, RollRecorded, roll.Kind)
	assert.Equal(t, "Astrid Vane", roll.Player)
	assert.Equal(t, domain.RollNeed, roll.RollKind)
	assert.Equal(t, 87, roll.Value)
	assert.Equal(t, uint32(42), roll.ItemID)
}

func TestClassifyRollOther(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("KupoMoogleBehemoth rolls Greed on the Demon Boots. 42!", nil)
	require.True(t, ok)
	require.NotNil(t, result.Roll)

	roll := result.Roll
	assert.Equal(t, "Kupo Moogle", roll.Player)
	assert.Equal(t, domain.RollGreed, roll.RollKind)
	assert.Equal(t, 42, roll.Value)
}

func TestClassifyRollKindIgnoresItemName(t *testing.T) {
	c, _ := newTestClassifier(t)

	// "Needle Holder" contains the Need keyword; the kind must come from
	// the word before " on ", not anywhere in the line.
	result, ok := c.Classify("Astrid Vane rolls Greed on the Needle Holder. 42!", nil)
	require.True(t, ok)
	require.NotNil(t, result.Roll)
	assert.Equal(t, domain.RollGreed, result.Roll.RollKind)
	assert.Equal(t, "Needle Holder", result.Roll.ItemName)

	result, ok = c.Classify("You roll Need on the Greedy Gorget. 12!", nil)
	require.True(t, ok)
	require.NotNil(t, result.Roll)
	assert.Equal(t, domain.RollNeed, result.Roll.RollKind)
}

func TestClassifyFishing(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You land a goldfish measuring 8.2 ilms!", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, uint32(55), event.ItemID)
	assert.Equal(t, "Goldfish (8.2 ilms)", event.ItemName)
	assert.Equal(t, uint32(1), event.Quantity)
	assert.Equal(t, domain.SourceGathering, event.Source)
}

func TestClassifyPassiveObtain(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("3 potions are obtained.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, uint32(3), event.Quantity)
	assert.Equal(t, "Potion", event.ItemName)
	assert.True(t, event.IsOwn)
}

func TestClassifyInventoryAdd(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("A Potion is added to your inventory.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, uint32(1), event.Quantity)
	assert.Equal(t, domain.SourceOther, event.Source)
}

func TestClassifyExtraction(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You successfully extract a Mythril Ore from the Leather Jacket.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, "Mythril Ore", event.ItemName)
	assert.Equal(t, uint32(1), event.Quantity)
	assert.Equal(t, domain.SourceExtraction, event.Source)
}

func TestClassifyExchange(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You exchange 2 tomestones for a Demon Boots.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, uint32(42), event.ItemID)
	assert.Equal(t, "Demon Boots", event.ItemName)
	assert.Equal(t, domain.SourceExchange, event.Source)
}

func TestClassifyDutyBonus(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("A bonus of 1,500 gil has been awarded for being matched with a party in progress.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Equal(t, catalog.GilItemID, event.ItemID)
	assert.Equal(t, "Gil", event.ItemName)
	assert.Equal(t, uint32(1500), event.Quantity)
	assert.Equal(t, domain.SourceDutyRouletteBonus, event.Source)
}

func TestClassifyStructuredRefPreferred(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You obtain a mithril chunk.", &ItemRef{ID: 3, Name: "mithril chunk"})
	require.True(t, ok)
	require.NotNil(t, result.Event)

	// The reference resolves and overwrites the text-derived name.
	assert.Equal(t, uint32(3), result.Event.ItemID)
	assert.Equal(t, "Mythril Ore", result.Event.ItemName)
}

func TestClassifyUnresolvedItemKeepsName(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You obtain a glowing mystery cube.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)

	event := result.Event
	assert.Zero(t, event.ItemID)
	assert.Zero(t, event.IconID)
	assert.Equal(t, "glowing mystery cube", event.ItemName)
}

func TestClassifyNoActivePlayerSkipsLine(t *testing.T) {
	c, state := newTestClassifier(t)
	state.Clear()

	result, ok := c.Classify("You obtain a Mythril Ore.", nil)
	assert.True(t, ok, "shape still matches")
	assert.Nil(t, result.Event)
	assert.Nil(t, result.Roll)
}

func TestClassifyUnmatchedLine(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("Kupo Moogle says hello.", nil)
	assert.False(t, ok)
	assert.Nil(t, result.Event)
	assert.Nil(t, result.Roll)
}

func TestClassifyHQMarker(t *testing.T) {
	c, _ := newTestClassifier(t)

	result, ok := c.Classify("You obtain a Potion HQ.", nil)
	require.True(t, ok)
	require.NotNil(t, result.Event)
	assert.True(t, result.Event.HighQuality)
	assert.Equal(t, "Potion", result.Event.ItemName)
}
