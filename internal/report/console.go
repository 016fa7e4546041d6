package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/joseph-ayodele/statements-tracker/internal/aggregate"
)

// PrintSummary writes the human-readable batch summary: counts, totals per
// institution and beneficiary, and the needs-review table with the
// specific missing fields so the source document or filename can be fixed.
func PrintSummary(w io.Writer, report *aggregate.Report) {
	total := len(report.Results)
	fmt.Fprintf(w, "Documents processed: %d\n", total)
	fmt.Fprintf(w, "Complete: %d\n", report.Complete)
	fmt.Fprintf(w, "Needs review: %d\n", total-report.Complete)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "By institution:")
	for _, it := range report.Institutions {
		fmt.Fprintf(w, "  %s: %d documents (%d complete), $%s\n",
			it.Institution.DisplayName(), it.Documents, it.Complete, formatAmount(it.Total))
	}
	if len(report.Beneficiaries) > 0 {
		fmt.Fprintln(w, "By beneficiary:")
		for _, bt := range report.Beneficiaries {
			fmt.Fprintf(w, "  %s: %d documents, $%s\n", bt.Beneficiary, bt.Documents, formatAmount(bt.Total))
		}
	}
	fmt.Fprintf(w, "GRAND TOTAL: $%s\n", formatAmount(report.GrandTotal))

	if len(report.NeedsReview) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d statements need manual review:\n", len(report.NeedsReview))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Filename", "Institution", "Missing"})
	for _, item := range report.NeedsReview {
		table.Append([]string{
			item.Filename,
			item.Institution.DisplayName(),
			strings.Join(item.Reasons, ", "),
		})
	}
	table.Render()
}

// formatAmount renders a dollar amount with thousands separators and two
// decimal places.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
