package constants

// ResultStatus is the per-document outcome of a batch run.
type ResultStatus string

const (
	StatusComplete    ResultStatus = "COMPLETE"     // account number and closing value both extracted
	StatusNeedsReview ResultStatus = "NEEDS_REVIEW" // at least one required field is missing
)
