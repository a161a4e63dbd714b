package domain

// CatalogRecord is the read-only external item data this core queries.
// The catalog itself is owned by the host; records are never mutated here.
type CatalogRecord struct {
	ID     uint32 `json:"id"`
	IconID uint32 `json:"icon"`
	Rarity int    `json:"rarity"`
	Name   string `json:"name"`
}
