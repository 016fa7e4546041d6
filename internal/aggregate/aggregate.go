// Package aggregate derives the batch summary from the full result set.
// Build is a pure function: it borrows the results read-only and nothing
// here is incrementally updated or persisted.
package aggregate

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/statements-tracker/constants"
	"github.com/joseph-ayodele/statements-tracker/internal/entity"
)

// InstitutionTotal sums one institution's slice of the batch.
type InstitutionTotal struct {
	Institution constants.Institution
	Documents   int
	Complete    int
	Total       float64
}

// BeneficiaryTotal sums one beneficiary's slice of the batch. Records
// without a beneficiary code group under the empty string.
type BeneficiaryTotal struct {
	Beneficiary string
	Documents   int
	Total       float64
}

// ReviewItem is one needs-review record with its missing-field reasons.
type ReviewItem struct {
	Filename    string
	Institution constants.Institution
	Reasons     []string
}

// Report is the aggregate view of one batch run.
type Report struct {
	RunID       uuid.UUID
	GeneratedAt time.Time

	// Results sorted by filename; length equals the input document count.
	Results []entity.Result

	Institutions  []InstitutionTotal
	Beneficiaries []BeneficiaryTotal
	GrandTotal    float64
	Complete      int
	NeedsReview   []ReviewItem
}

// Build computes the report for a result set. Absent closing values
// contribute nothing to any total; they are not zeros.
func Build(runID uuid.UUID, results []entity.Result) *Report {
	sorted := make([]entity.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Filename < sorted[j].Filename })

	report := &Report{
		RunID:       runID,
		GeneratedAt: time.Now(),
		Results:     sorted,
	}

	instTotals := map[constants.Institution]*InstitutionTotal{}
	benTotals := map[string]*BeneficiaryTotal{}

	for i := range sorted {
		r := &sorted[i]

		it, ok := instTotals[r.Institution]
		if !ok {
			it = &InstitutionTotal{Institution: r.Institution}
			instTotals[r.Institution] = it
		}
		it.Documents++

		if r.Status() == constants.StatusComplete {
			report.Complete++
			it.Complete++
		} else {
			report.NeedsReview = append(report.NeedsReview, ReviewItem{
				Filename:    r.Filename,
				Institution: r.Institution,
				Reasons:     r.MissingFields(),
			})
		}

		if r.ClosingValue != nil {
			it.Total += *r.ClosingValue
			report.GrandTotal += *r.ClosingValue
		}

		if r.Beneficiary != nil {
			bt, ok := benTotals[*r.Beneficiary]
			if !ok {
				bt = &BeneficiaryTotal{Beneficiary: *r.Beneficiary}
				benTotals[*r.Beneficiary] = bt
			}
			bt.Documents++
			if r.ClosingValue != nil {
				bt.Total += *r.ClosingValue
			}
		}
	}

	for _, it := range instTotals {
		report.Institutions = append(report.Institutions, *it)
	}
	sort.Slice(report.Institutions, func(i, j int) bool {
		return report.Institutions[i].Institution < report.Institutions[j].Institution
	})

	for _, bt := range benTotals {
		report.Beneficiaries = append(report.Beneficiaries, *bt)
	}
	sort.Slice(report.Beneficiaries, func(i, j int) bool {
		return report.Beneficiaries[i].Beneficiary < report.Beneficiaries[j].Beneficiary
	})

	return report
}
