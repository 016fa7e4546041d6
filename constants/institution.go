package constants

// Institution is the canonical tag for a known statement layout.
type Institution string

// Stable values (written into reports, keep these exact strings).
const (
	InstitutionWFA     Institution = "WELLS_FARGO_ADVISORS"
	InstitutionBOK     Institution = "BOK_FINANCIAL"
	InstitutionUnknown Institution = "UNKNOWN"
)

// DefaultInstitution is the most common layout; the classifier commits to it
// when no signature matches rather than returning Unknown.
const DefaultInstitution = InstitutionWFA

// DisplayName returns the human-readable institution name used in reports.
func (i Institution) DisplayName() string {
	switch i {
	case InstitutionWFA:
		return "Wells Fargo Advisors"
	case InstitutionBOK:
		return "BOK Financial"
	default:
		return "Unknown"
	}
}
