package ocr

import (
	"math"
	"regexp"
	"strconv"
)

// nonPriceChars matches everything that cannot be part of a numeric price.
// Upstream text extraction is noisy: currency symbols, thousands separators
// and trailing unit text all show up in price fields.
var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// NormalizePrice parses a heterogeneous price value (string, number or
// absent) into a numeric price. Returns nil when no usable price exists.
func NormalizePrice(value any) *float64 {
	switch p := value.(type) {
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil
		}
		return &p
	case int:
		f := float64(p)
		return &f
	case int64:
		f := float64(p)
		return &f
	case string:
		cleaned := nonPriceChars.ReplaceAllString(p, "")
		if cleaned == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
