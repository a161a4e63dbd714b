package classify

// Message-shape marker phrases. Matchers test these in a fixed priority
// order; several phrases overlap as substrings, so the order in
// classifier.go is load-bearing.
const (
	phraseLootList     = " has been added to the loot list"
	phraseRollLocal    = "You roll "
	phraseRollOther    = " rolls "
	phraseRollNeed     = "Need"
	phraseRollGreed    = "Greed"
	phraseRollOn       = " on "
	phraseFishingLand  = "You land "
	phraseFishingSize  = " measuring "
	phraseFishingIlms  = " ilms"
	phraseObtainSelf   = "You obtain "
	phraseObtainOther  = " obtains "
	phraseSynthesize   = "You synthesize "
	phrasePassiveIs    = " is obtained"
	phrasePassiveAre   = " are obtained"
	phraseInventoryAdd = " is added to your inventory"
	phraseExtraction   = "successfully extract "
	phraseExtractFrom  = " from the "
	phraseExchange     = "You exchange "
	phraseExchangeFor  = " for "
	phraseBonusPrefix  = "A bonus of "
	phraseBonusAwarded = " has been awarded"
	phraseGilSuffix    = " gil"
)

// Shape names used as the metrics label for classified lines.
const (
	ShapeLootList     = "loot_list"
	ShapeRoll         = "roll"
	ShapeFishing      = "fishing"
	ShapeObtain       = "obtain"
	ShapePassive      = "passive_obtain"
	ShapeInventoryAdd = "inventory_add"
	ShapeExtraction   = "extraction"
	ShapeExchange     = "exchange"
	ShapeDutyBonus    = "duty_bonus"
)

// Log message constants
const (
	LogMsgUnresolvedItem = "Item name did not resolve, keeping text-derived name"
	LogMsgNoActivePlayer = "Skipping line, no active player identity"
)
