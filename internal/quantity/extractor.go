// Package quantity extracts item quantities from the free-form remainder of a
// loot message. The remainder is whatever follows a recognized lead-in phrase
// such as "You obtain " and may carry the quantity in several natural-language
// forms: a plain integer, a comma-grouped integer, a bonus notation like
// "54(+9)", an article, or a bare unit-of-measure word.
package quantity

import (
	"math"
	"strconv"
	"strings"
)

// Result is the outcome of extracting a quantity and item name from a
// message remainder.
type Result struct {
	Quantity    uint32
	ItemName    string
	HighQuality bool
}

// Extract parses a message remainder into a quantity and a cleaned item name.
// It is total: when no known pattern matches, the quantity defaults to 1 and
// the whole remainder becomes the item name.
func Extract(remainder string) Result {
	remainder = strings.TrimSpace(remainder)

	qty := uint32(1)
	name := remainder

	token, rest := splitToken(remainder)
	switch {
	case token == "":
		// Empty remainder, nothing to parse.

	case isBonusToken(token):
		if n, ok := parseBonusToken(token); ok {
			qty = n
			name = rest
		}

	case isGroupedNumber(token):
		if n, err := strconv.ParseUint(strings.ReplaceAll(token, ",", ""), 10, 32); err == nil {
			qty = uint32(n)
			name = stripUnitPhrase(rest)
		}

	case isPlainNumber(token):
		if n, err := strconv.ParseUint(token, 10, 32); err == nil {
			qty = uint32(n)
			name = stripUnitPhrase(rest)
		}

	case strings.EqualFold(token, "a"), strings.EqualFold(token, "an"):
		qty = 1
		name = stripUnitPhrase(rest)

	case isBareUnitPlural(token):
		// A plural unit word with no numeral ("chunks of rock salt" after a
		// quantity-bearing clause elsewhere in the sentence) implies one unit.
		qty = 1
		name = stripLeadingOf(rest)
	}

	if qty == 0 {
		qty = 1
	}

	return clean(qty, name)
}

// splitToken separates the first space-delimited token from the rest.
func splitToken(s string) (string, string) {
	idx := strings.IndexByte(s, ' ')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}

// isBonusToken reports whether the token uses bonus notation, e.g. "54(+9)".
func isBonusToken(token string) bool {
	return strings.Contains(token, "(+") && strings.HasSuffix(token, ")")
}

// parseBonusToken sums the base and bonus amounts of a "<int>(+<int>)" token.
func parseBonusToken(token string) (uint32, bool) {
	open := strings.Index(token, "(+")
	base, err := strconv.ParseUint(token[:open], 10, 32)
	if err != nil {
		return 0, false
	}
	bonus, err := strconv.ParseUint(token[open+2:len(token)-1], 10, 32)
	if err != nil {
		return 0, false
	}
	sum := base + bonus
	if sum > math.MaxUint32 {
		return 0, false
	}
	return uint32(sum), true
}

// isGroupedNumber reports whether the token is a digit-grouped integer
// such as "1,500".
func isGroupedNumber(token string) bool {
	if !strings.Contains(token, ",") {
		return false
	}
	if token == "" || token[0] < '0' || token[0] > '9' {
		return false
	}
	for _, r := range token {
		if r != ',' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// isPlainNumber reports whether the token is an unadorned integer.
func isPlainNumber(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stripUnitPhrase removes a leading "<unit> of " phrase from the item name,
// in singular or plural form.
func stripUnitPhrase(name string) string {
	lower := strings.ToLower(name)
	for _, unit := range unitsOfMeasure {
		for _, form := range []string{unit.Plural, unit.Singular} {
			prefix := form + " of "
			if strings.HasPrefix(lower, prefix) {
				return strings.TrimSpace(name[len(prefix):])
			}
		}
	}
	return name
}

// isBareUnitPlural reports whether the token is a plural unit word on its own.
func isBareUnitPlural(token string) bool {
	for _, unit := range unitsOfMeasure {
		if strings.EqualFold(token, unit.Plural) {
			return true
		}
	}
	return false
}

// stripLeadingOf removes a leading "of " left behind by a bare unit word.
func stripLeadingOf(name string) string {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "of ") {
		return strings.TrimSpace(name[3:])
	}
	return name
}

// clean applies the post-processing shared by every extraction path:
// trailing punctuation, the HQ marker, surrounding quotes and irregular
// plural noise in the item name itself.
func clean(qty uint32, name string) Result {
	name = strings.TrimRight(strings.TrimSpace(name), ".,!?:; ")

	hq := false
	if strings.HasSuffix(name, hqSuffix) {
		hq = true
		name = strings.TrimSpace(strings.TrimSuffix(name, hqSuffix))
	}

	name = strings.Trim(name, `"'`+"“”‘’")

	lower := strings.ToLower(name)
	for plural, singular := range irregularPlurals {
		if strings.HasPrefix(lower, plural) {
			name = singular + name[len(plural):]
			break
		}
	}

	return Result{Quantity: qty, ItemName: name, HighQuality: hq}
}
