// Package catalog resolves item names and encoded identifiers against the
// host-supplied read-only item catalog.
package catalog

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/metrics"
)

// Lookup is the read-only catalog capability supplied by the host.
type Lookup interface {
	// ByID returns the record for a decoded base item ID.
	ByID(id uint32) (*domain.CatalogRecord, bool)
	// ByName returns the record whose name matches exactly (case-insensitive).
	ByName(name string) (*domain.CatalogRecord, bool)
	// ByNameSubstring returns the first record whose name contains the query.
	ByNameSubstring(name string) (*domain.CatalogRecord, bool)
	// EventItemByName is ByName against the secondary event-item catalog.
	EventItemByName(name string) (*domain.CatalogRecord, bool)
}

// singularRule rewrites a plural suffix to its singular form.
type singularRule struct {
	Suffix  string
	Replace string
}

// singularRules are tried in order; the first singular form that matches any
// catalog entry wins.
var singularRules = []singularRule{
	{"ies", "y"},
	{"ves", "f"},
	{"ves", "fe"},
	{"ixes", "ix"},
	{"xes", "x"},
	{"ses", "s"},
	{"s", ""},
}

// Resolver resolves free-text names and encoded IDs to catalog records.
// Name resolution runs a multi-stage fallback chain, so successful results
// are memoized in an expiring LRU.
type Resolver struct {
	lookup Lookup
	cache  *expirable.LRU[string, *domain.CatalogRecord]
}

// NewResolver creates a Resolver over the given catalog capability.
// cacheSize and cacheTTL fall back to package defaults when zero.
func NewResolver(lookup Lookup, cacheSize int, cacheTTL time.Duration) *Resolver {
	if cacheSize <= 0 {
		cacheSize = DefaultResolveCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultResolveCacheTTLSeconds * time.Second
	}

	return &Resolver{
		lookup: lookup,
		cache:  expirable.NewLRU[string, *domain.CatalogRecord](cacheSize, nil, cacheTTL),
	}
}

// EncodeHQ returns the encoded high-quality identifier for a base item ID.
// ResolveID inverts it.
func EncodeHQ(id uint32) uint32 {
	return id + ItemIDHQOffset
}

// DecodeID strips the HQ and event-item encodings from an identifier,
// returning the base ID and whether the HQ range was used.
func DecodeID(id uint32) (uint32, bool) {
	switch {
	case id >= EventItemIDThreshold:
		return id % EventItemIDModulo, false
	case id > ItemIDHQOffset:
		return id - ItemIDHQOffset, true
	default:
		return id, false
	}
}

// ResolveID decodes an encoded identifier and performs a direct lookup.
// The second return reports whether the ID carried the HQ encoding.
func (r *Resolver) ResolveID(id uint32) (*domain.CatalogRecord, bool, error) {
	if r == nil || r.lookup == nil {
		return nil, false, domain.ErrCatalogUnavailable
	}

	base, hq := DecodeID(id)
	rec, ok := r.lookup.ByID(base)
	if !ok {
		return nil, hq, domain.ErrItemNotFound
	}
	return rec, hq, nil
}

// ResolveName resolves a free-text item name through the staged fallback
// chain. Each stage commits to its first hit; no stage is revisited:
//
//  1. exact case-insensitive match
//  2. toggled "the " prefix
//  3. singularization rules, first form that matches wins
//  4. event-item exact match, then its own singular fallback
//  5. substring containment scan over the primary catalog
//
// Returns domain.ErrItemNotFound only when every stage exhausts.
func (r *Resolver) ResolveName(name string) (*domain.CatalogRecord, error) {
	if r == nil || r.lookup == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrItemNotFound
	}

	key := strings.ToLower(name)
	if rec, ok := r.cache.Get(key); ok {
		metrics.ResolveCacheHits.Inc()
		return rec, nil
	}
	metrics.ResolveCacheMisses.Inc()

	rec := r.resolveNameUncached(name)
	if rec == nil {
		return nil, domain.ErrItemNotFound
	}

	r.cache.Add(key, rec)
	return rec, nil
}

func (r *Resolver) resolveNameUncached(name string) *domain.CatalogRecord {
	if rec, ok := r.lookup.ByName(name); ok {
		return rec
	}

	if rec, ok := r.lookup.ByName(toggleThePrefix(name)); ok {
		return rec
	}

	if rec := r.trySingulars(name, r.lookup.ByName); rec != nil {
		return rec
	}

	if rec, ok := r.lookup.EventItemByName(name); ok {
		return rec
	}
	if rec := r.trySingulars(name, r.lookup.EventItemByName); rec != nil {
		return rec
	}

	if rec, ok := r.lookup.ByNameSubstring(name); ok {
		return rec
	}

	return nil
}

// trySingulars applies the singularization table in order against the given
// lookup function.
func (r *Resolver) trySingulars(name string, lookup func(string) (*domain.CatalogRecord, bool)) *domain.CatalogRecord {
	lower := strings.ToLower(name)
	for _, rule := range singularRules {
		if !strings.HasSuffix(lower, rule.Suffix) {
			continue
		}
		candidate := name[:len(name)-len(rule.Suffix)] + rule.Replace
		if rec, ok := lookup(candidate); ok {
			return rec
		}
	}
	return nil
}

// toggleThePrefix adds a "the " prefix if absent and removes it if present.
func toggleThePrefix(name string) string {
	if strings.HasPrefix(strings.ToLower(name), "the ") {
		return name[4:]
	}
	return "the " + name
}
