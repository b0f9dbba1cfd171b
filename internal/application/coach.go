package application

import (
	"context"

	"github.com/minsukang/ytcoach/internal/domain"
	"github.com/minsukang/ytcoach/internal/ports"
)

// CoachOptions configures one coaching run
type CoachOptions struct {
	APIKey string
	Batch  BatchOptions
}

// CoachResult is the outcome of one full pipeline execution
type CoachResult struct {
	Outcome *domain.BatchOutcome
	Report  string
}

// CoachService orchestrates the full pipeline: batch fetch, then one
// generation request. Each Run is an independent execution; nothing is kept
// between runs and the API key only exists as a parameter of this call.
type CoachService struct {
	batch     *BatchService
	generator ports.ReportGenerator
}

// NewCoachService creates the pipeline service
func NewCoachService(batch *BatchService, generator ports.ReportGenerator) *CoachService {
	return &CoachService{batch: batch, generator: generator}
}

// Run fetches all transcripts and generates the coaching report. When every
// fetch fails the generator is never invoked and ErrNoTranscripts is returned
// alongside the outcome so the failure list can still be shown.
func (s *CoachService) Run(ctx context.Context, rawInput string, opts CoachOptions) (*CoachResult, error) {
	if opts.APIKey == "" {
		// Fail before any transcript fetch, matching the generator's guard
		return nil, domain.ErrMissingCredential
	}

	outcome := s.batch.Run(ctx, rawInput, opts.Batch)
	if !outcome.HasTranscripts() {
		return &CoachResult{Outcome: outcome}, domain.ErrNoTranscripts
	}

	report, err := s.generator.Generate(ctx, outcome.Blob(), opts.APIKey)
	if err != nil {
		return &CoachResult{Outcome: outcome}, err
	}

	return &CoachResult{Outcome: outcome, Report: report}, nil
}
