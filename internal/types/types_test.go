package types

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TypesTestSuite is a test suite for the core value types
type TypesTestSuite struct {
	suite.Suite
}

// TestTypesSuite runs the test suite
func TestTypesSuite(t *testing.T) {
	suite.Run(t, new(TypesTestSuite))
}

func validRequest() *Request {
	return &Request{
		Site:            "paper",
		Instrument:      "BTC_USD",
		CurrentTime:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TargetTime:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TradingSpread:   optional.Some(decimal.NewFromFloat(0.01)),
		TradingExposure: optional.Some(decimal.NewFromFloat(0.1)),
		TradingSplit:    3,
		FundingCurrency: "USD",
	}
}

func (suite *TypesTestSuite) TestRequestValidate() {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *Request) {},
			wantErr: false,
		},
		{
			name:    "missing site",
			mutate:  func(r *Request) { r.Site = "" },
			wantErr: true,
		},
		{
			name:    "missing instrument",
			mutate:  func(r *Request) { r.Instrument = "" },
			wantErr: true,
		},
		{
			name:    "missing target time",
			mutate:  func(r *Request) { r.TargetTime = time.Time{} },
			wantErr: true,
		},
		{
			name:    "missing spread",
			mutate:  func(r *Request) { r.TradingSpread = optional.None[decimal.Decimal]() },
			wantErr: true,
		},
		{
			name:    "missing exposure",
			mutate:  func(r *Request) { r.TradingExposure = optional.None[decimal.Decimal]() },
			wantErr: true,
		},
		{
			name:    "zero split",
			mutate:  func(r *Request) { r.TradingSplit = 0 },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			request := validRequest()
			tc.mutate(request)

			err := request.Validate()
			if tc.wantErr {
				suite.Assert().Error(err)
			} else {
				suite.Assert().NoError(err)
			}
		})
	}
}

func (suite *TypesTestSuite) TestRequestKeyStripsTradingParameters() {
	request := validRequest()
	key := request.Key()

	suite.Assert().Equal("paper", key.Site)
	suite.Assert().Equal("BTC_USD", key.Instrument)
	suite.Assert().Equal(request.TargetTime, key.Timestamp)
}

func (suite *TypesTestSuite) TestKeyEqualityUsesAllFields() {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := NewKey("paper", "BTC_USD", ts)
	b := NewKey("paper", "BTC_USD", ts)
	c := NewKey("paper", "BTC_USD", ts.Add(time.Second))

	suite.Assert().Equal(a, b)
	suite.Assert().NotEqual(a, c)
}

func (suite *TypesTestSuite) TestEstimationValidity() {
	valid := Estimation{
		Price:      optional.Some(decimal.NewFromInt(100)),
		Confidence: optional.Some(decimal.NewFromFloat(0.5)),
	}
	suite.Assert().True(valid.IsValid())

	missingPrice := Estimation{
		Confidence: optional.Some(decimal.NewFromFloat(0.5)),
	}
	suite.Assert().False(missingPrice.IsValid())

	missingConfidence := Estimation{
		Price: optional.Some(decimal.NewFromInt(100)),
	}
	suite.Assert().False(missingConfidence.IsValid())

	zeroConfidence := Estimation{
		Price:      optional.Some(decimal.NewFromInt(100)),
		Confidence: optional.Some(decimal.Zero),
	}
	suite.Assert().False(zeroConfidence.IsValid())
}

func (suite *TypesTestSuite) TestEstimationConfidenceClamping() {
	tooHigh := Estimation{
		Price:      optional.Some(decimal.NewFromInt(100)),
		Confidence: optional.Some(decimal.NewFromInt(2)),
	}
	suite.Assert().True(tooHigh.ClampedConfidence().Equal(decimal.New(1, 0)))

	tooLow := Estimation{
		Price:      optional.Some(decimal.NewFromInt(100)),
		Confidence: optional.Some(decimal.NewFromInt(-1)),
	}
	suite.Assert().True(tooLow.ClampedConfidence().Equal(decimal.Zero))

	inRange := Estimation{
		Price:      optional.Some(decimal.NewFromInt(100)),
		Confidence: optional.Some(decimal.NewFromFloat(0.25)),
	}
	suite.Assert().True(inRange.ClampedConfidence().Equal(decimal.NewFromFloat(0.25)))
}

func (suite *TypesTestSuite) TestInstructionIdentity() {
	price := decimal.NewFromInt(100)
	size := decimal.NewFromFloat(0.5)

	first := NewCreateInstruction(price, size)
	second := NewCreateInstruction(price, size)

	// Value-equal instructions stay distinct line items.
	suite.Assert().NotEqual(first.ID(), second.ID())
	suite.Assert().True(first.Price.Equal(second.Price))
	suite.Assert().True(first.Size.Equal(second.Size))

	cancelA := NewCancelInstruction("order-1")
	cancelB := NewCancelInstruction("order-1")
	suite.Assert().NotEqual(cancelA.ID(), cancelB.ID())
}

func (suite *TypesTestSuite) TestAdviceSides() {
	empty := Advice{}
	suite.Assert().False(empty.HasBuy())
	suite.Assert().False(empty.HasSell())

	zeroSize := Advice{
		BuyLimitPrice: optional.Some(decimal.NewFromInt(100)),
		BuyLimitSize:  optional.Some(decimal.Zero),
	}
	suite.Assert().False(zeroSize.HasBuy())

	buy := Advice{
		BuyLimitPrice: optional.Some(decimal.NewFromInt(100)),
		BuyLimitSize:  optional.Some(decimal.NewFromFloat(0.5)),
	}
	suite.Assert().True(buy.HasBuy())
	suite.Assert().False(buy.HasSell())
}
