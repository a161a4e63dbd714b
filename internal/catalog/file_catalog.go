package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/osse101/LootTally_Go/internal/domain"
)

// fileConfig is the JSON layout of a catalog file.
type fileConfig struct {
	Version     string                 `json:"version"`
	Description string                 `json:"description,omitempty"`
	Items       []domain.CatalogRecord `json:"items"`
}

// FileCatalog is a Lookup backed by JSON catalog files, used by the
// standalone binary and by tests. Hosts embedding the core supply their own
// Lookup over live game data instead.
type FileCatalog struct {
	byID        map[uint32]*domain.CatalogRecord
	byName      map[string]*domain.CatalogRecord
	ordered     []*domain.CatalogRecord
	eventByName map[string]*domain.CatalogRecord
}

// NewFileCatalog loads the primary catalog and, when eventItemPath is
// non-empty, the secondary event-item catalog.
func NewFileCatalog(itemPath, eventItemPath string) (*FileCatalog, error) {
	c := &FileCatalog{
		byID:        make(map[uint32]*domain.CatalogRecord),
		byName:      make(map[string]*domain.CatalogRecord),
		eventByName: make(map[string]*domain.CatalogRecord),
	}

	items, err := loadCatalogFile(itemPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}
	for i := range items {
		rec := &items[i]
		c.byID[rec.ID] = rec
		c.ordered = append(c.ordered, rec)

		key := strings.ToLower(rec.Name)
		if _, exists := c.byName[key]; exists {
			slog.Warn(LogMsgDuplicateCatalogName, "name", rec.Name, "id", rec.ID)
			continue
		}
		c.byName[key] = rec
	}

	if eventItemPath != "" {
		eventItems, err := loadCatalogFile(eventItemPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load event item catalog: %w", err)
		}
		for i := range eventItems {
			rec := &eventItems[i]
			key := strings.ToLower(rec.Name)
			if _, exists := c.eventByName[key]; exists {
				slog.Warn(LogMsgDuplicateCatalogName, "name", rec.Name, "id", rec.ID)
				continue
			}
			c.eventByName[key] = rec
		}
	}

	slog.Info(LogMsgCatalogLoaded, "items", len(c.ordered), "event_items", len(c.eventByName))
	return c, nil
}

func loadCatalogFile(path string) ([]domain.CatalogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return cfg.Items, nil
}

// ByID implements Lookup.
func (c *FileCatalog) ByID(id uint32) (*domain.CatalogRecord, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

// ByName implements Lookup.
func (c *FileCatalog) ByName(name string) (*domain.CatalogRecord, bool) {
	rec, ok := c.byName[strings.ToLower(name)]
	return rec, ok
}

// ByNameSubstring implements Lookup. The scan preserves catalog order so the
// first containing item wins deterministically.
func (c *FileCatalog) ByNameSubstring(name string) (*domain.CatalogRecord, bool) {
	query := strings.ToLower(name)
	if query == "" {
		return nil, false
	}
	for _, rec := range c.ordered {
		if strings.Contains(strings.ToLower(rec.Name), query) {
			return rec, true
		}
	}
	return nil, false
}

// EventItemByName implements Lookup.
func (c *FileCatalog) EventItemByName(name string) (*domain.CatalogRecord, bool) {
	rec, ok := c.eventByName[strings.ToLower(name)]
	return rec, ok
}
