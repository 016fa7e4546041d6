package entity

import (
	"github.com/joseph-ayodele/statements-tracker/constants"
)

// Page is the plain text of one physical page of a document. Text is empty
// when upstream extraction produced nothing for that page; consumers must
// treat an empty page as a non-match, never as an error.
type Page struct {
	Number int // 1-based physical page number
	Text   string
}

// HasText reports whether extraction produced any text for this page.
func (p Page) HasText() bool {
	return p.Text != ""
}

// Result is the unit of output per processed document. Optional fields are
// pointers; nil means the field could not be extracted.
type Result struct {
	Filename      string
	Institution   constants.Institution
	Beneficiary   *string
	AccountNumber *string
	ClosingValue  *float64
}

// Status derives the result classification. It is a pure function of field
// presence and is never stored independently.
func (r *Result) Status() constants.ResultStatus {
	if r.AccountNumber != nil && r.ClosingValue != nil {
		return constants.StatusComplete
	}
	return constants.StatusNeedsReview
}

// MissingFields lists the human-readable reasons a result needs review.
// Empty for complete results.
func (r *Result) MissingFields() []string {
	var reasons []string
	if r.AccountNumber == nil {
		reasons = append(reasons, "no account number")
	}
	if r.ClosingValue == nil {
		reasons = append(reasons, "no closing value")
	}
	return reasons
}
