// Package agent executes instructions against a venue and verifies that each
// instruction's effect became observable venue-side. Venue calls are not
// atomic across instructions; partial completion is expected and handled by
// reconciliation, not prevented.
package agent

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/market"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/rxtech-lab/argo-maker/pkg/errors"
	"go.uber.org/zap"
)

// Dispatch records the venue's response to one instruction. VenueID is None
// when the venue call failed.
type Dispatch struct {
	Instruction types.Instruction
	VenueID     optional.Option[string]
}

// RetryPolicy bounds the exponential backoff used while waiting for an
// instruction's effect to become observable.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryPolicy straddles the eventual consistency window of a typical
// venue REST API.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval: 100 * time.Millisecond,
		MaxElapsedTime:  4 * time.Second,
	}
}

// Agent dispatches instructions and reconciles their outcomes.
type Agent struct {
	logger *logger.Logger
	retry  RetryPolicy
}

// NewAgent creates an Agent with the given reconciliation retry policy.
func NewAgent(log *logger.Logger, retry RetryPolicy) *Agent {
	if retry.InitialInterval <= 0 {
		retry = DefaultRetryPolicy()
	}

	return &Agent{
		logger: log,
		retry:  retry,
	}
}

// Manage issues one venue call per instruction, cancels and creates in input
// order, and records each result against the instruction's identity. An empty
// input yields an empty map without any venue call.
func (a *Agent) Manage(ctx context.Context, mkt market.Context, request *types.Request, instructions []types.Instruction) map[string]Dispatch {
	results := make(map[string]Dispatch, len(instructions))
	if request == nil {
		return results
	}

	key := request.Key()

	for _, instruction := range instructions {
		var (
			venueID optional.Option[string]
			err     error
		)

		switch ins := instruction.(type) {
		case *types.CreateInstruction:
			venueID, err = mkt.CreateOrder(ctx, key, ins)
		case *types.CancelInstruction:
			venueID, err = mkt.CancelOrder(ctx, key, ins)
		}

		if err != nil {
			a.logger.Warn("instruction dispatch failed",
				zap.String("site", request.Site),
				zap.String("instrument", request.Instrument),
				zap.String("instruction", instruction.ID()),
				zap.Error(err),
			)

			venueID = optional.None[string]()
		}

		results[instruction.ID()] = Dispatch{
			Instruction: instruction,
			VenueID:     venueID,
		}
	}

	return results
}

// Reconcile verifies every dispatched instruction with a venue id: a create
// must be findable, a cancel must be absent or inactive. Entries without a
// venue id were already counted as failed upstream and are skipped. Each check
// is retried with bounded exponential backoff before giving up. Returns true
// only if every checked instruction reconciles.
func (a *Agent) Reconcile(ctx context.Context, mkt market.Context, request *types.Request, dispatches map[string]Dispatch) bool {
	if request == nil {
		return false
	}

	key := request.Key()
	success := true

	for _, dispatch := range dispatches {
		if dispatch.VenueID.IsNone() {
			continue
		}

		if err := a.reconcileOne(ctx, mkt, key, dispatch); err != nil {
			a.logger.Warn("instruction failed to reconcile",
				zap.String("site", request.Site),
				zap.String("instrument", request.Instrument),
				zap.String("instruction", dispatch.Instruction.ID()),
				zap.String("venue_id", dispatch.VenueID.Unwrap()),
				zap.Error(err),
			)

			success = false
		}
	}

	return success
}

// reconcileOne polls for one instruction's expected post-condition under the
// agent's retry policy.
func (a *Agent) reconcileOne(ctx context.Context, mkt market.Context, key types.Key, dispatch Dispatch) error {
	venueID := dispatch.VenueID.Unwrap()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = a.retry.InitialInterval
	policy.MaxElapsedTime = a.retry.MaxElapsedTime

	check := func() error {
		order, err := mkt.FindOrder(ctx, key, venueID)
		if err != nil {
			return errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "order lookup failed", err)
		}

		switch dispatch.Instruction.(type) {
		case *types.CreateInstruction:
			if order.IsNone() {
				return errors.Newf(errors.ErrCodeReconcileFailed, "created order %s not observed", venueID)
			}

			return nil
		case *types.CancelInstruction:
			if order.IsSome() && order.Unwrap().Active {
				return errors.Newf(errors.ErrCodeReconcileFailed, "cancelled order %s still active", venueID)
			}

			return nil
		}

		return errors.New(errors.ErrCodeInvalidInstruction, "unknown instruction variant")
	}

	return backoff.Retry(check, backoff.WithContext(policy, ctx))
}
