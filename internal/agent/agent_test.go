package agent

import (
	"context"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/rxtech-lab/argo-maker/mocks"
	"github.com/rxtech-lab/argo-maker/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AgentTestSuite is a test suite for the Agent
type AgentTestSuite struct {
	suite.Suite
	agent *Agent
}

// TestAgentSuite runs the test suite
func TestAgentSuite(t *testing.T) {
	suite.Run(t, new(AgentTestSuite))
}

// SetupSuite runs once before all tests in the suite
func (suite *AgentTestSuite) SetupSuite() {
	// Tight retry bounds keep reconciliation failures fast in tests.
	suite.agent = NewAgent(logger.NewNopLogger(), RetryPolicy{
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  20 * time.Millisecond,
	})
}

func request() *types.Request {
	return &types.Request{
		Site:            "paper",
		Instrument:      "BTC_USD",
		CurrentTime:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TargetTime:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TradingSpread:   optional.Some(decimal.NewFromFloat(0.01)),
		TradingExposure: optional.Some(decimal.NewFromFloat(0.1)),
		TradingSplit:    1,
	}
}

func (suite *AgentTestSuite) TestManageDispatchesEachInstruction() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	cancel := types.NewCancelInstruction("venue-1")
	create := types.NewCreateInstruction(decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	mkt.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), cancel).Return(optional.Some("venue-1"), nil)
	mkt.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), create).Return(optional.Some("venue-2"), nil)

	results := suite.agent.Manage(context.Background(), mkt, request(), []types.Instruction{cancel, create})

	suite.Require().Len(results, 2)
	suite.Assert().Equal("venue-1", results[cancel.ID()].VenueID.Unwrap())
	suite.Assert().Equal("venue-2", results[create.ID()].VenueID.Unwrap())
}

func (suite *AgentTestSuite) TestManageRecordsFailureAsNone() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	create := types.NewCreateInstruction(decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	mkt.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), create).
		Return(optional.None[string](), errors.New(errors.ErrCodeOrderCreateFailed, "venue rejected"))

	results := suite.agent.Manage(context.Background(), mkt, request(), []types.Instruction{create})

	suite.Require().Len(results, 1)
	suite.Assert().True(results[create.ID()].VenueID.IsNone())
}

func (suite *AgentTestSuite) TestManageEmptyInputMakesNoVenueCall() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	results := suite.agent.Manage(context.Background(), mkt, request(), nil)

	suite.Assert().Empty(results)
}

func (suite *AgentTestSuite) TestReconcileCreateObserved() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	create := types.NewCreateInstruction(decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-1").
		Return(optional.Some(types.Order{Id: "venue-1", Active: true}), nil)

	dispatches := map[string]Dispatch{
		create.ID(): {Instruction: create, VenueID: optional.Some("venue-1")},
	}

	suite.Assert().True(suite.agent.Reconcile(context.Background(), mkt, request(), dispatches))
}

// A create that dispatched successfully but never shows up venue-side must
// fail reconciliation.
func (suite *AgentTestSuite) TestReconcileCreateMissing() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	create := types.NewCreateInstruction(decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-1").
		Return(optional.None[types.Order](), nil).MinTimes(1)

	dispatches := map[string]Dispatch{
		create.ID(): {Instruction: create, VenueID: optional.Some("venue-1")},
	}

	suite.Assert().False(suite.agent.Reconcile(context.Background(), mkt, request(), dispatches))
}

// The check retries: an order that appears on the second poll reconciles.
func (suite *AgentTestSuite) TestReconcileRetriesUntilObserved() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	create := types.NewCreateInstruction(decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	gomock.InOrder(
		mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-1").
			Return(optional.None[types.Order](), nil),
		mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-1").
			Return(optional.Some(types.Order{Id: "venue-1", Active: true}), nil),
	)

	dispatches := map[string]Dispatch{
		create.ID(): {Instruction: create, VenueID: optional.Some("venue-1")},
	}

	suite.Assert().True(suite.agent.Reconcile(context.Background(), mkt, request(), dispatches))
}

func (suite *AgentTestSuite) TestReconcileCancelAbsentOrInactive() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	absent := types.NewCancelInstruction("venue-1")
	inactive := types.NewCancelInstruction("venue-2")

	mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-1").
		Return(optional.None[types.Order](), nil)
	mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-2").
		Return(optional.Some(types.Order{Id: "venue-2", Active: false}), nil)

	dispatches := map[string]Dispatch{
		absent.ID():   {Instruction: absent, VenueID: optional.Some("venue-1")},
		inactive.ID(): {Instruction: inactive, VenueID: optional.Some("venue-2")},
	}

	suite.Assert().True(suite.agent.Reconcile(context.Background(), mkt, request(), dispatches))
}

func (suite *AgentTestSuite) TestReconcileCancelStillActiveFails() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	cancel := types.NewCancelInstruction("venue-1")

	mkt.EXPECT().FindOrder(gomock.Any(), gomock.Any(), "venue-1").
		Return(optional.Some(types.Order{Id: "venue-1", Active: true}), nil).MinTimes(1)

	dispatches := map[string]Dispatch{
		cancel.ID(): {Instruction: cancel, VenueID: optional.Some("venue-1")},
	}

	suite.Assert().False(suite.agent.Reconcile(context.Background(), mkt, request(), dispatches))
}

// Instructions whose dispatch already failed are skipped, not re-checked.
func (suite *AgentTestSuite) TestReconcileSkipsFailedDispatches() {
	ctrl := gomock.NewController(suite.T())
	defer ctrl.Finish()

	mkt := mocks.NewMockContext(ctrl)

	create := types.NewCreateInstruction(decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	dispatches := map[string]Dispatch{
		create.ID(): {Instruction: create, VenueID: optional.None[string]()},
	}

	suite.Assert().True(suite.agent.Reconcile(context.Background(), mkt, request(), dispatches))
}
