// Package parsefields implements the per-document field extraction:
// account number and beneficiary code from the filename, page location and
// closing value from page text. All matchers are ordered fallback chains;
// the first match wins and a miss degrades the field to nil, never to an
// error.
package parsefields

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Filenames follow "<free-form name> - <account token>[suffix].<ext>". The
// free-form section may itself contain " - ", so the split is on the last
// occurrence.
const accountSeparator = " - "

// Ordered account patterns: the hyphen+period form is the more specific
// institution format and must be tried before the general form.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+-\d+\.\d+)`),
	regexp.MustCompile(`(\d+[-.]\d+(?:\.\d+)?)`),
}

// Warehouse marker spellings seen in filenames; these words sit where the
// beneficiary code would and must be skipped, case-insensitively.
var warehousePattern = regexp.MustCompile(`(?i)^(WH|Warehouse|Whse|Whouse|Warehse)$`)

// beneficiaryPattern matches a 2-4 letter beneficiary code.
var beneficiaryPattern = regexp.MustCompile(`(?i)^[A-Z]{2,4}$`)

// ParseFilename derives the account number and beneficiary code from a
// document filename. Either value is nil when no pattern matched. Whether
// the beneficiary is meaningful is the caller's concern; only one
// institution layout defines it.
func ParseFilename(name string) (accountNumber, beneficiary *string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	idx := strings.LastIndex(base, accountSeparator)
	if idx < 0 {
		return nil, nil
	}
	nameSection := strings.TrimSpace(base[:idx])
	accountSection := strings.TrimSpace(base[idx+len(accountSeparator):])

	if acct := matchAccount(accountSection); acct != "" {
		accountNumber = &acct
	}
	if code := matchBeneficiary(nameSection); code != "" {
		beneficiary = &code
	}
	return accountNumber, beneficiary
}

func matchAccount(section string) string {
	for _, p := range accountPatterns {
		if m := p.FindStringSubmatch(section); m != nil {
			return m[1]
		}
	}
	// Fallback: first whitespace-delimited token of the section.
	if fields := strings.Fields(section); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// matchBeneficiary scans the free-form name section's words in reverse
// (closest to the separator first), skipping warehouse markers. The first
// remaining 2-4 letter word is the code, normalized to uppercase.
func matchBeneficiary(nameSection string) string {
	words := strings.Fields(nameSection)
	for i := len(words) - 1; i >= 0; i-- {
		word := words[i]
		if warehousePattern.MatchString(word) {
			continue
		}
		if beneficiaryPattern.MatchString(word) {
			return strings.ToUpper(word)
		}
	}
	return ""
}
