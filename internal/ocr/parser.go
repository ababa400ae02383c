package ocr

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
)

// pricePattern marks a menu-item boundary in raw OCR text: a dollar sign
// followed by digits, optionally a decimal point and exactly two digits.
var pricePattern = regexp.MustCompile(`\$\d+(?:\.\d{2})?`)

// ParseResult converts a raw recognition result into draft menu items.
// Structured records take precedence; raw text is the fallback. Drafts
// whose trimmed name is 2 characters or shorter are discarded here, for
// both paths. An empty result is valid and means nothing was extracted.
func ParseResult(result *Result, category models.MenuType, batch time.Time) []models.DraftMenuItem {
	if result == nil {
		return nil
	}

	alloc := NewAllocator(category, batch)

	var drafts []models.DraftMenuItem
	if len(result.Items) > 0 {
		drafts = extractStructured(result.Items, category, alloc)
	} else {
		drafts = extractLines(result.Text, category, alloc)
	}

	kept := make([]models.DraftMenuItem, 0, len(drafts))
	for _, d := range drafts {
		if len(strings.TrimSpace(d.Name)) > 2 {
			kept = append(kept, d)
		}
	}
	return kept
}

// extractStructured maps already-structured upstream records into drafts,
// one per record in input order. Nothing is dropped here; filtering happens
// centrally in ParseResult.
func extractStructured(records []Record, category models.MenuType, alloc *Allocator) []models.DraftMenuItem {
	drafts := make([]models.DraftMenuItem, 0, len(records))

	for i, rec := range records {
		name := rec.Name
		if name == "" {
			name = rec.Title
		}
		if name == "" {
			name = fmt.Sprintf("Item %d", i+1)
		}

		desc := rec.Description
		if desc == "" {
			desc = rec.Desc
		}

		drafts = append(drafts, models.DraftMenuItem{
			ID:          alloc.StructuredItemID(i),
			Name:        name,
			Description: desc,
			Price:       NormalizePrice(rec.Price),
			Category:    category,
			Subcategory: rec.Category,
			Tags:        ClassifyTags(name+" "+desc, category),
			Available:   true,
		})
	}

	return drafts
}

// extractLines segments raw OCR text into drafts. A line containing a
// dollar amount (and longer than 5 characters) starts a new item: the text
// before the amount is the name. Subsequent non-price lines longer than 10
// characters accumulate into the description. Menus are assumed to list one
// item per price line, with optional wrapped description lines after it.
//
// Tags are not applied on this path; fallback items carry an empty tag set.
func extractLines(text string, category models.MenuType, alloc *Allocator) []models.DraftMenuItem {
	var drafts []models.DraftMenuItem
	var current *models.DraftMenuItem

	flush := func() {
		if current != nil && current.Name != "" {
			current.ID = alloc.ItemID(len(drafts))
			drafts = append(drafts, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		loc := pricePattern.FindStringIndex(line)
		if loc != nil && len(line) > 5 {
			flush()
			current = &models.DraftMenuItem{
				Name:      strings.TrimSpace(line[:loc[0]]),
				Price:     NormalizePrice(line[loc[0]:loc[1]]),
				Category:  category,
				Tags:      []string{},
				Available: true,
			}
			continue
		}

		if current != nil && len(line) > 10 {
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
		}
	}

	flush()
	return drafts
}
