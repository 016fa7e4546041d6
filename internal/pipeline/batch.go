package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/statements-tracker/internal/entity"
	"github.com/joseph-ayodele/statements-tracker/internal/ingest"
)

// Runner processes a directory of documents sequentially in stable
// filename order. Documents are independent; one malformed document
// degrades to a needs-review result and the run continues.
type Runner struct {
	Logger    *slog.Logger
	Processor *Processor
}

func NewRunner(processor *Processor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Logger: logger, Processor: processor}
}

// Run lists matching documents under dir and extracts one Result per
// document. The returned slice's length always equals the document count.
func (r *Runner) Run(ctx context.Context, runID uuid.UUID, dir string, includeExts []string) ([]entity.Result, error) {
	paths, err := ingest.ListDocuments(dir, includeExts)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("batch.start", "run_id", runID, "dir", dir, "documents", len(paths))

	results := make([]entity.Result, 0, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		results = append(results, r.Processor.Process(ctx, path))
	}

	r.Logger.Info("batch.done", "run_id", runID, "documents", len(results))
	return results, nil
}
