package parsefields

import (
	"strconv"
	"strings"

	"github.com/joseph-ayodele/statements-tracker/internal/profile"
)

// ExtractValue recovers the closing value from located page text by
// applying the profile's ordered pattern chain. For each pattern every
// match on the page is considered in order, and the first numeral that
// parses and passes the profile's bounds wins; a pattern whose matches all
// fail validation falls through to the next pattern. Returns nil when
// nothing qualifies.
func ExtractValue(text string, p *profile.Profile) *float64 {
	if text == "" {
		return nil
	}
	for _, vp := range p.ValuePatterns {
		for _, m := range vp.Pattern.FindAllStringSubmatch(text, -1) {
			v, ok := parseAmount(m[1])
			if !ok {
				continue
			}
			if !p.Bounds.Accept(v) {
				continue
			}
			return &v
		}
	}
	return nil
}

// parseAmount converts a captured numeral like "1,234.56" to a float,
// stripping thousands separators and stray spaces.
func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
