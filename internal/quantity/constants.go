package quantity

// unitOfMeasure is one known "<unit> of <item>" phrase. The game counts many
// stackable materials in these units; the phrase is part of the sentence, not
// the item name, so it is stripped during extraction.
type unitOfMeasure struct {
	Singular string
	Plural   string
}

// unitsOfMeasure lists every unit phrase the extractor recognizes.
var unitsOfMeasure = []unitOfMeasure{
	{"chunk", "chunks"},
	{"pinch", "pinches"},
	{"bottle", "bottles"},
	{"piece", "pieces"},
	{"phial", "phials"},
	{"stalk", "stalks"},
	{"set", "sets"},
	{"bundle", "bundles"},
	{"pot", "pots"},
	{"coil", "coils"},
	{"plank", "planks"},
	{"length", "lengths"},
	{"stack", "stacks"},
	{"bolt", "bolts"},
	{"loop", "loops"},
	{"pair", "pairs"},
}

// irregularPlurals maps plural noise inside the item name itself to its
// singular form, e.g. "sacks of nuts" arrives pluralized when quantity > 1
// but the catalog name is "sack of nuts".
var irregularPlurals = map[string]string{
	"sacks of": "sack of",
}

// hqSuffix marks a high-quality item at the end of the extracted name.
const hqSuffix = " HQ"
