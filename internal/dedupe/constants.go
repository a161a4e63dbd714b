package dedupe

import "time"

const (
	// DefaultWindow suppresses duplicate sightings of the same loot within
	// this interval. Hosts often surface the same acquisition on two or
	// three channels within a few hundred milliseconds.
	DefaultWindow = 500 * time.Millisecond

	// DefaultHorizon bounds how long entries are retained before the lazy
	// purge removes them.
	DefaultHorizon = 3 * time.Second
)
