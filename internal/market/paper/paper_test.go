package paper_test

import (
	"context"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-maker/internal/market/paper"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// PaperVenueTestSuite is a test suite for the in-memory venue
type PaperVenueTestSuite struct {
	suite.Suite
	venue *paper.Venue
	key   types.Key
}

// TestPaperVenueSuite runs the test suite
func TestPaperVenueSuite(t *testing.T) {
	suite.Run(t, new(PaperVenueTestSuite))
}

// SetupTest runs before each test
func (suite *PaperVenueTestSuite) SetupTest() {
	suite.venue = paper.NewVenue(paper.Config{
		BestBid:     decimal.NewFromFloat(99.8),
		BestAsk:     decimal.NewFromFloat(100.2),
		BestBidSize: decimal.NewFromInt(2),
		BestAskSize: decimal.NewFromInt(3),
		LastPrice:   decimal.NewFromInt(100),
		TickSize:    decimal.NewFromFloat(0.1),
		LotSize:     decimal.NewFromFloat(0.01),
		Depth:       3,
	})
	suite.key = types.NewKey("paper", "BTC_USD", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func (suite *PaperVenueTestSuite) TestMidPriceIsHalfwayBetweenQuotes() {
	mid, err := suite.venue.MidPrice(context.Background(), suite.key)
	suite.Require().NoError(err)
	suite.Assert().True(mid.Unwrap().Equal(decimal.NewFromInt(100)))
}

func (suite *PaperVenueTestSuite) TestLadderFansOutwardFromBest() {
	asks, err := suite.venue.AskPrices(context.Background(), suite.key)
	suite.Require().NoError(err)
	suite.Require().Len(asks.Unwrap(), 3)
	suite.Assert().True(asks.Unwrap()[0].Price.Equal(decimal.NewFromFloat(100.2)))
	suite.Assert().True(asks.Unwrap()[2].Price.Equal(decimal.NewFromFloat(100.4)))

	bids, err := suite.venue.BidPrices(context.Background(), suite.key)
	suite.Require().NoError(err)
	suite.Require().Len(bids.Unwrap(), 3)
	suite.Assert().True(bids.Unwrap()[0].Price.Equal(decimal.NewFromFloat(99.8)))
	suite.Assert().True(bids.Unwrap()[2].Price.Equal(decimal.NewFromFloat(99.6)))
}

func (suite *PaperVenueTestSuite) TestRoundingIsSignAware() {
	tests := []struct {
		name     string
		value    decimal.Decimal
		mode     types.RoundingMode
		expected decimal.Decimal
	}{
		{name: "positive down", value: decimal.NewFromFloat(100.17), mode: types.RoundDown, expected: decimal.NewFromFloat(100.1)},
		{name: "positive up", value: decimal.NewFromFloat(100.11), mode: types.RoundUp, expected: decimal.NewFromFloat(100.2)},
		{name: "negative down shrinks magnitude", value: decimal.NewFromFloat(-100.17), mode: types.RoundDown, expected: decimal.NewFromFloat(-100.1)},
		{name: "negative up grows magnitude", value: decimal.NewFromFloat(-100.11), mode: types.RoundUp, expected: decimal.NewFromFloat(-100.2)},
		{name: "already aligned", value: decimal.NewFromFloat(100.1), mode: types.RoundUp, expected: decimal.NewFromFloat(100.1)},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rounded, err := suite.venue.RoundTickSize(context.Background(), suite.key, tc.value, tc.mode)
			suite.Require().NoError(err)
			suite.Require().True(rounded.IsSome())
			suite.Assert().True(rounded.Unwrap().Equal(tc.expected), "got %s", rounded.Unwrap())
		})
	}
}

func (suite *PaperVenueTestSuite) TestRoundingWithoutIncrementIsNone() {
	venue := paper.NewVenue(paper.Config{})

	rounded, err := venue.RoundTickSize(context.Background(), suite.key, decimal.NewFromInt(100), types.RoundDown)
	suite.Require().NoError(err)
	suite.Assert().True(rounded.IsNone())
}

func (suite *PaperVenueTestSuite) TestOrderLifecycle() {
	create := types.NewCreateInstruction(decimal.NewFromFloat(99.5), decimal.NewFromFloat(0.5))

	id, err := suite.venue.CreateOrder(context.Background(), suite.key, create)
	suite.Require().NoError(err)
	suite.Require().True(id.IsSome())

	active, err := suite.venue.ListActiveOrders(context.Background(), suite.key)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Assert().Equal(id.Unwrap(), active[0].Id)
	suite.Assert().True(active[0].RemainingQuantity.Equal(decimal.NewFromFloat(0.5)))

	cancelled, err := suite.venue.CancelOrder(context.Background(), suite.key, types.NewCancelInstruction(id.Unwrap()))
	suite.Require().NoError(err)
	suite.Assert().Equal(id.Unwrap(), cancelled.Unwrap())

	active, err = suite.venue.ListActiveOrders(context.Background(), suite.key)
	suite.Require().NoError(err)
	suite.Assert().Empty(active)

	found, err := suite.venue.FindOrder(context.Background(), suite.key, id.Unwrap())
	suite.Require().NoError(err)
	suite.Require().True(found.IsSome())
	suite.Assert().False(found.Unwrap().Active)
}

func (suite *PaperVenueTestSuite) TestCancelUnknownOrderIsNone() {
	cancelled, err := suite.venue.CancelOrder(context.Background(), suite.key, types.NewCancelInstruction("no-such-order"))
	suite.Require().NoError(err)
	suite.Assert().True(cancelled.IsNone())
}

func (suite *PaperVenueTestSuite) TestActiveOrdersAreScopedToInstrument() {
	create := types.NewCreateInstruction(decimal.NewFromFloat(99.5), decimal.NewFromFloat(0.5))

	_, err := suite.venue.CreateOrder(context.Background(), suite.key, create)
	suite.Require().NoError(err)

	other := types.NewKey("paper", "ETH_USD", suite.key.Timestamp)

	active, err := suite.venue.ListActiveOrders(context.Background(), other)
	suite.Require().NoError(err)
	suite.Assert().Empty(active)
}
