// Package playername recovers a player's true display name from the raw
// token the client renders for cross-world players, where the home server
// name is concatenated with no separating space (e.g. "Astrid VaneBehemoth").
package playername

import (
	"strings"
	"unicode"
)

// Normalize strips a concatenated server-name suffix from a raw player name
// and reconstructs the "First Last" boundary that display truncation
// destroyed. The input is returned unchanged when no known server name
// matches as a suffix.
//
// This is inherently heuristic and best-effort: a legitimate single-word
// display name that happens to end with a server name substring cannot be
// distinguished from a suffixed one. In that case the suffix is still
// stripped and no space is inserted (no capital boundary exists).
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	base, ok := stripWorldSuffix(raw)
	if !ok {
		return raw
	}

	// Scan backward for the nearest capital letter that is not the first
	// character and is not already preceded by a space, and split there.
	runes := []rune(base)
	for i := len(runes) - 1; i > 0; i-- {
		if unicode.IsUpper(runes[i]) && runes[i-1] != ' ' {
			base = string(runes[:i]) + " " + string(runes[i:])
			break
		}
	}

	return strings.TrimSpace(base)
}

// stripWorldSuffix removes the longest known world name suffix, matched
// case-insensitively. Longest wins so a name ending in a longer world is not
// clipped by a shorter world that shares its tail.
func stripWorldSuffix(raw string) (string, bool) {
	best := ""
	for _, world := range worldNames {
		if len(raw) <= len(world) {
			continue
		}
		if strings.EqualFold(raw[len(raw)-len(world):], world) && len(world) > len(best) {
			best = world
		}
	}
	if best == "" {
		return raw, false
	}
	return strings.TrimSpace(raw[:len(raw)-len(best)]), true
}
