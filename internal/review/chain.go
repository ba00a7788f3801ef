package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kayz/reelcheck/internal/llm"
	"github.com/kayz/reelcheck/internal/logger"
	"github.com/kayz/reelcheck/internal/persist"
	"github.com/kayz/reelcheck/internal/schema"
)

// Chain runs the two-step review flow: ask for a structured movie
// review, then feed the validated review into a kid-suitability
// assessment. A failure in the first step stops the chain.
type Chain struct {
	provider llm.Provider
	store    *persist.Store
	model    string
	log      zerolog.Logger
}

// Result is the outcome of one successful chain run.
type Result struct {
	RunID       string
	Review      *MovieReview
	Suitability *KidSuitability
}

// NewChain builds a chain for the given provider. store may be nil to
// skip run-history recording; model is recorded with each run.
func NewChain(provider llm.Provider, store *persist.Store, model string) *Chain {
	return &Chain{
		provider: provider,
		store:    store,
		model:    model,
		log:      logger.With("chain"),
	}
}

// Run executes both stages for the given movie title.
func (c *Chain) Run(ctx context.Context, movie string) (*Result, error) {
	runID := uuid.NewString()
	log := c.log.With().Str("run_id", runID).Str("movie", movie).Logger()

	log.Info().Str("provider", c.provider.Name()).Msg("requesting movie review")
	rev, err := c.reviewStage(ctx, movie)
	if err != nil {
		c.record(runID, movie, nil, nil, err)
		return nil, fmt.Errorf("review stage: %w", err)
	}
	log.Info().Int("rating", rev.Rating).Msg("review validated")

	log.Info().Msg("requesting kid-suitability assessment")
	suit, err := c.suitabilityStage(ctx, rev)
	if err != nil {
		c.record(runID, movie, rev, nil, err)
		return nil, fmt.Errorf("suitability stage: %w", err)
	}
	log.Info().Bool("suitable_for_under_10", suit.SuitableForUnder10).Msg("assessment validated")

	c.record(runID, movie, rev, suit, nil)

	return &Result{RunID: runID, Review: rev, Suitability: suit}, nil
}

func (c *Chain) reviewStage(ctx context.Context, movie string) (*MovieReview, error) {
	raw, err := c.provider.Complete(ctx, buildReviewPrompt(movie))
	if err != nil {
		return nil, err
	}
	return DecodeMovieReview([]byte(schema.ExtractJSON(raw)))
}

func (c *Chain) suitabilityStage(ctx context.Context, rev *MovieReview) (*KidSuitability, error) {
	raw, err := c.provider.Complete(ctx, buildSuitabilityPrompt(rev))
	if err != nil {
		return nil, err
	}
	return DecodeKidSuitability([]byte(schema.ExtractJSON(raw)))
}

// record writes the run outcome to the history store. Store failures
// are logged, never fatal to the chain itself.
func (c *Chain) record(runID, movie string, rev *MovieReview, suit *KidSuitability, runErr error) {
	if c.store == nil {
		return
	}

	run := &persist.Run{
		ID:        runID,
		Movie:     movie,
		Model:     c.model,
		Status:    "ok",
		CreatedAt: time.Now(),
	}
	if runErr != nil {
		run.Status = "failed"
		run.ErrorText = runErr.Error()
	}
	if rev != nil {
		if data, err := json.Marshal(rev); err == nil {
			run.ReviewJSON = string(data)
		}
	}
	if suit != nil {
		if data, err := json.Marshal(suit); err == nil {
			run.SuitabilityJSON = string(data)
		}
	}

	if err := c.store.SaveRun(run); err != nil {
		c.log.Warn().Err(err).Str("run_id", runID).Msg("failed to record run")
	}
}
