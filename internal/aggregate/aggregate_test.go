package aggregate

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/statements-tracker/constants"
	"github.com/joseph-ayodele/statements-tracker/internal/entity"
)

func strPtr(s string) *string   { return &s }
func valPtr(v float64) *float64 { return &v }

func sampleResults() []entity.Result {
	return []entity.Result{
		{
			Filename:      "c.pdf",
			Institution:   constants.InstitutionWFA,
			AccountNumber: strPtr("2193-4125"),
			ClosingValue:  valPtr(45156.04),
		},
		{
			Filename:      "a.pdf",
			Institution:   constants.InstitutionBOK,
			Beneficiary:   strPtr("BIC"),
			AccountNumber: strPtr("1150-0007374.1"),
			ClosingValue:  valPtr(705122.36),
		},
		{
			Filename:      "b.pdf",
			Institution:   constants.InstitutionBOK,
			Beneficiary:   strPtr("BIC"),
			AccountNumber: strPtr("1150-0007431.1"),
			// no closing value: contributes nothing to any total
		},
		{
			Filename:    "d.pdf",
			Institution: constants.InstitutionWFA,
			// both fields missing
		},
	}
}

func TestBuild_OneRecordPerDocument(t *testing.T) {
	in := sampleResults()
	report := Build(uuid.New(), in)
	if len(report.Results) != len(in) {
		t.Fatalf("results: got %d, want %d", len(report.Results), len(in))
	}
}

func TestBuild_ResultsSortedByFilename(t *testing.T) {
	report := Build(uuid.New(), sampleResults())
	for i := 1; i < len(report.Results); i++ {
		if report.Results[i-1].Filename > report.Results[i].Filename {
			t.Fatalf("results not sorted: %q before %q", report.Results[i-1].Filename, report.Results[i].Filename)
		}
	}
}

func TestBuild_AbsentValuesContributeNothing(t *testing.T) {
	report := Build(uuid.New(), sampleResults())
	want := 45156.04 + 705122.36
	if math.Abs(report.GrandTotal-want) > 1e-9 {
		t.Errorf("grand total: got %v, want %v", report.GrandTotal, want)
	}
}

func TestBuild_InstitutionTotals(t *testing.T) {
	report := Build(uuid.New(), sampleResults())
	if len(report.Institutions) != 2 {
		t.Fatalf("institutions: got %d, want 2", len(report.Institutions))
	}
	// Sorted by tag: BOK_FINANCIAL before WELLS_FARGO_ADVISORS.
	bok, wfa := report.Institutions[0], report.Institutions[1]
	if bok.Institution != constants.InstitutionBOK || wfa.Institution != constants.InstitutionWFA {
		t.Fatalf("unexpected institution order: %v", report.Institutions)
	}
	if bok.Documents != 2 || bok.Complete != 1 {
		t.Errorf("bok counts: got %d/%d, want 2/1", bok.Documents, bok.Complete)
	}
	if math.Abs(bok.Total-705122.36) > 1e-9 {
		t.Errorf("bok total: got %v, want 705122.36", bok.Total)
	}
	if wfa.Documents != 2 || wfa.Complete != 1 {
		t.Errorf("wfa counts: got %d/%d, want 2/1", wfa.Documents, wfa.Complete)
	}
}

func TestBuild_BeneficiaryTotals(t *testing.T) {
	report := Build(uuid.New(), sampleResults())
	if len(report.Beneficiaries) != 1 {
		t.Fatalf("beneficiaries: got %d, want 1", len(report.Beneficiaries))
	}
	bt := report.Beneficiaries[0]
	if bt.Beneficiary != "BIC" || bt.Documents != 2 {
		t.Errorf("beneficiary group: got %s/%d, want BIC/2", bt.Beneficiary, bt.Documents)
	}
	if math.Abs(bt.Total-705122.36) > 1e-9 {
		t.Errorf("beneficiary total: got %v, want 705122.36", bt.Total)
	}
}

func TestBuild_NeedsReviewReasons(t *testing.T) {
	report := Build(uuid.New(), sampleResults())
	if report.Complete != 2 {
		t.Errorf("complete: got %d, want 2", report.Complete)
	}
	if len(report.NeedsReview) != 2 {
		t.Fatalf("needs review: got %d, want 2", len(report.NeedsReview))
	}
	// Review items follow the sorted result order: b.pdf then d.pdf.
	if report.NeedsReview[0].Filename != "b.pdf" {
		t.Errorf("first review item: got %s, want b.pdf", report.NeedsReview[0].Filename)
	}
	if got := report.NeedsReview[0].Reasons; len(got) != 1 || got[0] != "no closing value" {
		t.Errorf("b.pdf reasons: got %v", got)
	}
	if got := report.NeedsReview[1].Reasons; len(got) != 2 {
		t.Errorf("d.pdf reasons: got %v, want both fields", got)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	report := Build(uuid.New(), nil)
	if len(report.Results) != 0 || report.GrandTotal != 0 || report.Complete != 0 {
		t.Errorf("empty input must produce an empty report: %+v", report)
	}
}
