// Package engine composes the per-cycle pipeline: advise, instruct, manage,
// reconcile. One pipeline serves one venue; the scheduler may run multiple
// instrument cycles concurrently against it.
package engine

import (
	"context"

	"github.com/rxtech-lab/argo-maker/internal/advisor"
	"github.com/rxtech-lab/argo-maker/internal/agent"
	"github.com/rxtech-lab/argo-maker/internal/cache"
	"github.com/rxtech-lab/argo-maker/internal/instructor"
	"github.com/rxtech-lab/argo-maker/internal/journal"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/market"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"go.uber.org/zap"
)

// Estimator produces the fair value estimate a cycle trades on. Estimation
// strategies live outside the pipeline; this is the seam they plug into.
type Estimator interface {
	Estimate(ctx context.Context, mkt market.Context, key types.Key) types.Estimation
}

// Pipeline wires the cached venue view and the pipeline stages together.
type Pipeline struct {
	market     market.Context
	advisor    *advisor.Advisor
	instructor *instructor.Instructor
	agent      *agent.Agent
	journal    *journal.Journal
	logger     *logger.Logger
}

// NewPipeline builds a pipeline over the given raw venue Context. The venue is
// wrapped with the read cache; all stages share the wrapped view. A nil
// journal disables journaling.
func NewPipeline(log *logger.Logger, venue market.Context, config *Config, j *journal.Journal) *Pipeline {
	c := cache.NewCache(config.Cache.TTL.Duration, config.Cache.MaxEntries, log)

	return &Pipeline{
		market:     market.NewCachedContext(venue, c),
		advisor:    advisor.NewAdvisor(log),
		instructor: instructor.NewInstructor(log),
		agent: agent.NewAgent(log, agent.RetryPolicy{
			InitialInterval: config.Reconcile.InitialInterval.Duration,
			MaxElapsedTime:  config.Reconcile.MaxElapsedTime.Duration,
		}),
		journal: j,
		logger:  log,
	}
}

// Market returns the cached venue view the pipeline reads through.
func (p *Pipeline) Market() market.Context {
	return p.market
}

// RunCycle executes one full decision cycle for the request and estimation.
// It returns true when every dispatched instruction reconciled. Journal write
// failures are logged, never fatal.
func (p *Pipeline) RunCycle(ctx context.Context, request *types.Request, estimation *types.Estimation) bool {
	advice := p.advisor.Advise(ctx, p.market, request, estimation)
	instructions := p.instructor.Instruct(ctx, p.market, request, &advice)
	dispatches := p.agent.Manage(ctx, p.market, request, instructions)
	success := p.agent.Reconcile(ctx, p.market, request, dispatches)

	p.record(request, dispatches, success)

	p.logger.Info("cycle complete",
		zap.String("site", request.Site),
		zap.String("instrument", request.Instrument),
		zap.Int("instructions", len(instructions)),
		zap.Bool("success", success),
	)

	return success
}

// record persists the cycle outcome when a journal is configured.
func (p *Pipeline) record(request *types.Request, dispatches map[string]agent.Dispatch, success bool) {
	if p.journal == nil {
		return
	}

	if err := p.journal.RecordCycle(request, success); err != nil {
		p.logger.Warn("failed to journal cycle", zap.Error(err))
	}

	for _, dispatch := range dispatches {
		reconciled := success && dispatch.VenueID.IsSome()

		if err := p.journal.RecordDispatch(request, dispatch.Instruction, dispatch.VenueID, reconciled); err != nil {
			p.logger.Warn("failed to journal instruction", zap.Error(err))
		}
	}
}
