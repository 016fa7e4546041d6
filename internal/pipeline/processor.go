package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/joseph-ayodele/statements-tracker/internal/entity"
	"github.com/joseph-ayodele/statements-tracker/internal/extract"
	"github.com/joseph-ayodele/statements-tracker/internal/parsefields"
	"github.com/joseph-ayodele/statements-tracker/internal/profile"
)

// Processor runs the per-document extraction sequence: page texts →
// classify institution → filename fields → locate page → extract value.
type Processor struct {
	Logger   *slog.Logger
	Source   extract.PageSource
	Profiles *profile.Set
}

func NewProcessor(source extract.PageSource, profiles *profile.Set, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Source: source, Profiles: profiles}
}

// Process extracts one Result from the document at path. A failure in any
// sub-step degrades that one field to nil; every document yields exactly
// one result and processing never aborts the batch. No state is shared
// between documents.
func (p *Processor) Process(ctx context.Context, path string) entity.Result {
	filename := filepath.Base(path)

	pages, err := p.Source.Pages(ctx, path)
	if err != nil {
		// Unreadable document: zero pages, classifier commits to the
		// default profile and all page-derived fields resolve to nil.
		p.Logger.Warn("processor.pages.failed", "file", filename, "err", err)
		pages = nil
	}

	prof := p.Profiles.Classify(pages)

	account, beneficiary := parsefields.ParseFilename(filename)
	if !prof.HasBeneficiary {
		beneficiary = nil
	}

	var value *float64
	if text, ok := parsefields.LocatePage(pages, prof); ok {
		value = parsefields.ExtractValue(text, prof)
	} else {
		p.Logger.Debug("processor.locate.miss", "file", filename, "institution", prof.ID)
	}

	result := entity.Result{
		Filename:      filename,
		Institution:   prof.ID,
		Beneficiary:   beneficiary,
		AccountNumber: account,
		ClosingValue:  value,
	}
	p.Logger.Info("processor.done",
		"file", filename,
		"institution", prof.ID,
		"status", result.Status(),
	)
	return result
}
