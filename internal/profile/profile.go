// Package profile holds the per-institution extraction rulesets. Each known
// statement layout is described as data (signatures, a page-locating rule,
// an ordered chain of value patterns with bounds) consumed by a single
// orchestrator, so adding an institution means adding a ruleset, not a
// parser.
package profile

import (
	"regexp"

	"github.com/joseph-ayodele/statements-tracker/constants"
)

// Bounds rejects spuriously matched numerals. A value is accepted when it
// is >= 0 (> 0 if MinExclusive) and, when Ceiling > 0, strictly below it.
// Violating matches are discarded, never clamped.
type Bounds struct {
	MinExclusive bool
	Ceiling      float64
}

// Accept reports whether v passes the bounds.
func (b Bounds) Accept(v float64) bool {
	if v < 0 {
		return false
	}
	if b.MinExclusive && v == 0 {
		return false
	}
	if b.Ceiling > 0 && v >= b.Ceiling {
		return false
	}
	return true
}

// ValuePattern is one way the closing value's label and numeral may be
// rendered. Patterns are tried in declaration order, first accepted match
// wins, so the most context-constrained pattern must come first.
type ValuePattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// PageRule locates the single page carrying the closing value.
//
// MarkersRequired selects between the two observed layouts: when true the
// page must match PagePattern AND contain every marker; when false the
// markers are a fallback and matching PagePattern alone (or all markers
// alone) suffices. Marker containment ignores internal whitespace because
// upstream extraction sometimes collapses spaces.
type PageRule struct {
	PagePattern     *regexp.Regexp
	Markers         []string
	MarkersRequired bool
}

// Profile is a fixed extraction ruleset for one known statement layout.
type Profile struct {
	ID   constants.Institution
	Name string

	// SignaturePages are the 0-based page indices checked for Signatures.
	// Institutions place their letterhead on different physical pages; a
	// document with fewer pages is checked in full.
	SignaturePages []int
	Signatures     []string

	// HasBeneficiary marks layouts whose filenames carry a beneficiary code.
	HasBeneficiary bool

	PageRule      *PageRule
	ValuePatterns []ValuePattern
	Bounds        Bounds
}

// Set is an ordered collection of profiles. Classification order is
// specificity order: the rarer signature is checked first and the last
// entry's miss falls through to the default profile.
type Set struct {
	ordered  []*Profile
	fallback *Profile
	byID     map[constants.Institution]*Profile
}

// NewSet builds a Set from profiles in classification order. The profile
// tagged constants.DefaultInstitution becomes the fallback.
func NewSet(profiles ...*Profile) *Set {
	s := &Set{byID: make(map[constants.Institution]*Profile, len(profiles))}
	for _, p := range profiles {
		s.ordered = append(s.ordered, p)
		s.byID[p.ID] = p
		if p.ID == constants.DefaultInstitution {
			s.fallback = p
		}
	}
	return s
}

// Get returns the profile for an institution tag, or nil.
func (s *Set) Get(id constants.Institution) *Profile {
	return s.byID[id]
}

// Fallback returns the default profile.
func (s *Set) Fallback() *Profile {
	return s.fallback
}

// Builtin returns the calibrated default rulesets. Ceilings and pattern
// literals are starting points to calibrate against real sample documents;
// a calibration file can override them (see Apply).
func Builtin() *Set {
	bok := &Profile{
		ID:             constants.InstitutionBOK,
		Name:           constants.InstitutionBOK.DisplayName(),
		SignaturePages: []int{0, 2, 3},
		Signatures:     []string{"BOK FINANCIAL", "BOKF"},
		HasBeneficiary: true,
		PageRule: &PageRule{
			// Whitespace may be fully absent: "Page2of12".
			PagePattern:     regexp.MustCompile(`Page\s*2\s*of\s*\d+`),
			Markers:         []string{"Account Overview"},
			MarkersRequired: true,
		},
		ValuePatterns: []ValuePattern{
			// The target Total follows the Accrued Income figure in the
			// Investment Summary; matching that context first keeps compound
			// totals ("Principal Total", "Accrued Income Total") out.
			{Name: "accrued-income-context", Pattern: regexp.MustCompile(`(?is)Accrued\s*Income\s+[\d,]+\.\d{2}\s+Total\s+\$?\s*([\d,]+\.\d{2})`)},
			// \bTotal cannot match inside collapsed compound words like
			// "PrincipalTotal"; spaced compounds are covered by the
			// context-constrained pattern above matching first.
			{Name: "standalone-total", Pattern: regexp.MustCompile(`(?i)\bTotal\s+\$?\s*([\d,]+\.\d{2})`)},
		},
		Bounds: Bounds{MinExclusive: true, Ceiling: 10_000_000_000},
	}

	wfa := &Profile{
		ID:             constants.InstitutionWFA,
		Name:           constants.InstitutionWFA.DisplayName(),
		SignaturePages: []int{0},
		Signatures:     []string{"WELLS FARGO", "Wells Fargo Advisors"},
		PageRule: &PageRule{
			PagePattern: regexp.MustCompile(`Page\s*1\s*of\s*\d+`),
			Markers:     []string{"SNAPSHOT", "Closing"},
		},
		ValuePatterns: []ValuePattern{
			{Name: "collapsed-label", Pattern: regexp.MustCompile(`(?i)Closingvalue\s*\$\s*([\d,]+\.\d{2})`)},
			{Name: "spaced-label", Pattern: regexp.MustCompile(`(?i)Closing\s+value\s+\$\s*([\d,]+\.\d{2})`)},
			{Name: "label-no-gap", Pattern: regexp.MustCompile(`(?i)Closing\s+value\$\s*([\d,]+\.\d{2})`)},
			{Name: "colon-label", Pattern: regexp.MustCompile(`(?i)Closing\s*value:\s*\$?\s*([\d,]+\.\d{2})`)},
		},
		Bounds: Bounds{Ceiling: 1_000_000_000},
	}

	unknown := &Profile{
		ID:   constants.InstitutionUnknown,
		Name: constants.InstitutionUnknown.DisplayName(),
		// No page rule: the locator falls back to the first non-empty page.
		ValuePatterns: wfa.ValuePatterns,
		Bounds:        wfa.Bounds,
	}

	return NewSet(bok, wfa, unknown)
}
