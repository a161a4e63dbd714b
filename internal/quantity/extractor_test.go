package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		remainder string
		wantQty   uint32
		wantName  string
		wantHQ    bool
	}{
		{
			name:      "plain integer",
			remainder: "3 fire shards.",
			wantQty:   3,
			wantName:  "fire shards",
		},
		{
			name:      "comma grouped integer",
			remainder: "1,500 gil.",
			wantQty:   1500,
			wantName:  "gil",
		},
		{
			name:      "bonus notation",
			remainder: "54(+9) white gatherer's scrips.",
			wantQty:   63,
			wantName:  "white gatherer's scrips",
		},
		{
			name:      "article a",
			remainder: "a potion.",
			wantQty:   1,
			wantName:  "potion",
		},
		{
			name:      "article an",
			remainder: "an elixir.",
			wantQty:   1,
			wantName:  "elixir",
		},
		{
			name:      "integer with unit phrase",
			remainder: "2 chunks of granite.",
			wantQty:   2,
			wantName:  "granite",
		},
		{
			name:      "article with unit phrase",
			remainder: "a pinch of active ingredients.",
			wantQty:   1,
			wantName:  "active ingredients",
		},
		{
			name:      "pair stripped",
			remainder: "a pair of demon boots.",
			wantQty:   1,
			wantName:  "demon boots",
		},
		{
			name:      "bare plural unit",
			remainder: "chunks of rock salt.",
			wantQty:   1,
			wantName:  "rock salt",
		},
		{
			name:      "hq marker",
			remainder: "2 bolts of rainbow cloth HQ.",
			wantQty:   2,
			wantName:  "rainbow cloth",
			wantHQ:    true,
		},
		{
			name:      "quoted name",
			remainder: `a "Substantial Sack".`,
			wantQty:   1,
			wantName:  "Substantial Sack",
		},
		{
			name:      "irregular plural sacks",
			remainder: "2 sacks of nuts.",
			wantQty:   2,
			wantName:  "sack of nuts",
		},
		{
			name:      "no quantity marker",
			remainder: "allagan tomestone of poetics.",
			wantQty:   1,
			wantName:  "allagan tomestone of poetics",
		},
		{
			name:      "empty remainder",
			remainder: "",
			wantQty:   1,
			wantName:  "",
		},
		{
			name:      "malformed bonus falls through",
			remainder: "x(+y) strange thing.",
			wantQty:   1,
			wantName:  "x(+y) strange thing",
		},
		{
			name:      "bonus sum past uint32 falls through",
			remainder: "4294967295(+4294967295) gil.",
			wantQty:   1,
			wantName:  "4294967295(+4294967295) gil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.remainder)

			assert.Equal(t, tt.wantQty, got.Quantity)
			assert.Equal(t, tt.wantName, got.ItemName)
			assert.Equal(t, tt.wantHQ, got.HighQuality)
		})
	}
}

func TestExtractIsTotal(t *testing.T) {
	// No input may panic or produce a zero quantity.
	inputs := []string{
		"0 void things.",
		",,,",
		"(+)",
		"999999999999999999999 overflowing items.",
		"   ",
	}

	for _, in := range inputs {
		got := Extract(in)
		assert.GreaterOrEqual(t, got.Quantity, uint32(1), "input %q", in)
	}
}
