package models

import "time"

// MenuType identifies which menu a batch of items belongs to
type MenuType string

const (
	MenuTypeWineList           MenuType = "wine_list"
	MenuTypeFeaturedMenu       MenuType = "featured_menu"
	MenuTypeSignatureCocktails MenuType = "signature_cocktails"
	MenuTypeTavernMenu         MenuType = "tavern_menu"
)

// ParseMenuType validates a menu type string from a request
func ParseMenuType(s string) (MenuType, bool) {
	switch MenuType(s) {
	case MenuTypeWineList, MenuTypeFeaturedMenu, MenuTypeSignatureCocktails, MenuTypeTavernMenu:
		return MenuType(s), true
	}
	return "", false
}

// DraftMenuItem is an extracted, not-yet-persisted menu entry.
// Price is nil when no price could be determined from the source.
type DraftMenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    MenuType `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags"`
	Available   bool     `json:"available"`
}

// MenuItem is a persisted menu entry. Timestamps are assigned by the
// storage layer at write time; the ingestion pipeline never mutates a
// persisted item afterward.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    MenuType  `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Tags        []string  `json:"tags"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
