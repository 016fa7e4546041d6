package parsefields

import (
	"strings"

	"github.com/joseph-ayodele/statements-tracker/internal/entity"
	"github.com/joseph-ayodele/statements-tracker/internal/profile"
)

// LocatePage returns the text of the single page carrying the closing
// value, per the profile's rule, evaluated page-by-page in physical order
// with the first match winning. Pages without text are skipped.
//
// A profile that declares a rule gets no substitute page when nothing
// matches: the second return is false and the caller records a missing
// field. Only the rule-less (unknown) profile falls back to the first
// non-empty page.
func LocatePage(pages []entity.Page, p *profile.Profile) (string, bool) {
	rule := p.PageRule
	for _, page := range pages {
		if !page.HasText() {
			continue
		}
		if rule == nil {
			return page.Text, true
		}
		if ruleMatches(rule, page.Text) {
			return page.Text, true
		}
	}
	return "", false
}

func ruleMatches(rule *profile.PageRule, text string) bool {
	pageHit := rule.PagePattern != nil && rule.PagePattern.MatchString(text)
	if len(rule.Markers) == 0 {
		return pageHit
	}
	markersHit := containsAllMarkers(text, rule.Markers)
	if rule.MarkersRequired {
		return pageHit && markersHit
	}
	return pageHit || markersHit
}

func containsAllMarkers(text string, markers []string) bool {
	for _, m := range markers {
		if !containsMarker(text, m) {
			return false
		}
	}
	return true
}

// containsMarker ignores internal whitespace on both sides, so the marker
// "Account Overview" also hits text extracted as "AccountOverview".
func containsMarker(text, marker string) bool {
	if strings.Contains(text, marker) {
		return true
	}
	return strings.Contains(collapse(text), collapse(marker))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), "")
}
