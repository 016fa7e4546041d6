package extract

import (
	"context"

	"github.com/joseph-ayodele/statements-tracker/internal/entity"
)

// PageSource yields, for a given document, the ordered sequence of per-page
// plain texts. Implementations return one Page per physical page, keeping
// page numbers stable even when a page yields no text. A document that
// cannot be opened at all returns an error; callers treat that as a
// zero-page document, not a batch failure.
type PageSource interface {
	Pages(ctx context.Context, path string) ([]entity.Page, error)
}
