package report

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/statements-tracker/constants"
	"github.com/joseph-ayodele/statements-tracker/internal/aggregate"
	"github.com/joseph-ayodele/statements-tracker/internal/entity"
)

func strPtr(s string) *string { return &s }
func fPtr(v float64) *float64 { return &v }

func TestPrintSummary(t *testing.T) {
	report := aggregate.Build(uuid.New(), []entity.Result{
		{
			Filename:      "a corp - 1111-2222.pdf",
			Institution:   constants.InstitutionWFA,
			AccountNumber: strPtr("1111-2222"),
			ClosingValue:  fPtr(45156.04),
		},
		{
			Filename:      "b corp WH BIC - 3719-3369.pdf",
			Institution:   constants.InstitutionBOK,
			Beneficiary:   strPtr("BIC"),
			AccountNumber: strPtr("3719-3369"),
		},
	})

	var buf strings.Builder
	PrintSummary(&buf, report)
	out := buf.String()

	for _, want := range []string{
		"Documents processed: 2",
		"Complete: 1",
		"Needs review: 1",
		"Wells Fargo Advisors: 1 documents (1 complete), $45,156.04",
		"BOK Financial: 1 documents (0 complete), $0.00",
		"BIC: 1 documents, $0.00",
		"GRAND TOTAL: $45,156.04",
		"1 statements need manual review:",
		"b corp WH BIC - 3719-3369.pdf",
		"no closing value",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestPrintSummary_AllComplete(t *testing.T) {
	report := aggregate.Build(uuid.New(), []entity.Result{
		{
			Filename:      "a corp - 1111-2222.pdf",
			Institution:   constants.InstitutionWFA,
			AccountNumber: strPtr("1111-2222"),
			ClosingValue:  fPtr(100),
		},
	})

	var buf strings.Builder
	PrintSummary(&buf, report)
	if strings.Contains(buf.String(), "manual review") {
		t.Errorf("unexpected review section:\n%s", buf.String())
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{45156.04, "45,156.04"},
		{705122.36, "705,122.36"},
		{1234567.8, "1,234,567.80"},
		{999.99, "999.99"},
		{-1234.5, "-1,234.50"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.in); got != tc.want {
			t.Errorf("formatAmount(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
