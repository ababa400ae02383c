package ocr

import (
	"strings"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
)

// tagRule maps keyword matches in item text to a descriptive tag.
// An empty category applies to every menu type; empty keywords mean the
// tag is applied unconditionally within its category.
type tagRule struct {
	category models.MenuType
	tag      string
	keywords []string
}

var tagRules = []tagRule{
	{category: models.MenuTypeSignatureCocktails, tag: "signature"},
	{category: models.MenuTypeSignatureCocktails, tag: "premium", keywords: []string{"premium", "top shelf"}},
	{category: models.MenuTypeWineList, tag: "reserve", keywords: []string{"reserve", "vintage"}},
	{category: models.MenuTypeWineList, tag: "red", keywords: []string{"red", "cabernet", "merlot", "malbec", "pinot noir", "syrah"}},
	{category: models.MenuTypeWineList, tag: "white", keywords: []string{"white", "chardonnay", "sauvignon blanc", "riesling", "pinot grigio"}},
	{category: models.MenuTypeWineList, tag: "sparkling", keywords: []string{"sparkling", "champagne"}},
	{tag: "featured", keywords: []string{"featured", "special"}},
	{tag: "limited", keywords: []string{"new", "limited"}},
}

// ClassifyTags derives descriptive tags from item text for the given menu
// type. Matching is case-insensitive substring search; rules apply
// independently, so an item may collect several tags. The result contains
// no duplicates.
func ClassifyTags(text string, category models.MenuType) []string {
	text = strings.ToLower(text)

	tags := make([]string, 0, 2)
	seen := make(map[string]bool)

	for _, rule := range tagRules {
		if rule.category != "" && rule.category != category {
			continue
		}
		if !rule.matches(text) {
			continue
		}
		if seen[rule.tag] {
			continue
		}
		seen[rule.tag] = true
		tags = append(tags, rule.tag)
	}

	return tags
}

func (r tagRule) matches(text string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
