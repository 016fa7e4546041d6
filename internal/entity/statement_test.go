package entity

import (
	"strings"
	"testing"

	"github.com/joseph-ayodele/statements-tracker/constants"
)

func strPtr(s string) *string   { return &s }
func valPtr(v float64) *float64 { return &v }

func TestResult_StatusTruthTable(t *testing.T) {
	tests := []struct {
		name    string
		account *string
		value   *float64
		want    constants.ResultStatus
		reasons string
	}{
		{"both present", strPtr("1150-0007431.1"), valPtr(705122.36), constants.StatusComplete, ""},
		{"value missing", strPtr("1150-0007431.1"), nil, constants.StatusNeedsReview, "no closing value"},
		{"account missing", nil, valPtr(705122.36), constants.StatusNeedsReview, "no account number"},
		{"both missing", nil, nil, constants.StatusNeedsReview, "no account number, no closing value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{
				Filename:      "x.pdf",
				Institution:   constants.InstitutionBOK,
				AccountNumber: tt.account,
				ClosingValue:  tt.value,
			}
			if got := r.Status(); got != tt.want {
				t.Errorf("status: got %s, want %s", got, tt.want)
			}
			if got := strings.Join(r.MissingFields(), ", "); got != tt.reasons {
				t.Errorf("reasons: got %q, want %q", got, tt.reasons)
			}
		})
	}
}

func TestPage_HasText(t *testing.T) {
	if (Page{Number: 1}).HasText() {
		t.Error("empty page must report no text")
	}
	if !(Page{Number: 1, Text: "x"}).HasText() {
		t.Error("non-empty page must report text")
	}
}
