package profile

import (
	"strings"

	"github.com/joseph-ayodele/statements-tracker/internal/entity"
)

// Classify inspects page texts and returns the matching profile. Profiles
// are checked in specificity order; the first signature hit wins, and a
// document matching nothing is committed to the default profile rather
// than Unknown. Absent page text is a non-match, never an error.
func (s *Set) Classify(pages []entity.Page) *Profile {
	for _, p := range s.ordered {
		if len(p.Signatures) == 0 {
			continue
		}
		if p.matches(pages) {
			return p
		}
	}
	return s.fallback
}

func (p *Profile) matches(pages []entity.Page) bool {
	for _, idx := range p.signatureIndices(len(pages)) {
		text := pages[idx].Text
		if text == "" {
			continue
		}
		for _, sig := range p.Signatures {
			if containsSignature(text, sig) {
				return true
			}
		}
	}
	return false
}

// signatureIndices returns the page indices to inspect. Short documents
// are checked in full; longer ones only at the declared letterhead pages.
func (p *Profile) signatureIndices(pageCount int) []int {
	max := 0
	for _, idx := range p.SignaturePages {
		if idx > max {
			max = idx
		}
	}
	if pageCount <= max {
		all := make([]int, pageCount)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return p.SignaturePages
}

// containsSignature checks the literal signature as-is, case-insensitively,
// and with internal whitespace removed, since the upstream text source
// sometimes collapses spaces.
func containsSignature(text, sig string) bool {
	if strings.Contains(text, sig) {
		return true
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, strings.ToLower(sig)) {
		return true
	}
	return strings.Contains(collapseWhitespace(lower), collapseWhitespace(strings.ToLower(sig)))
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
