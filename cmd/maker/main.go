package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/engine"
	"github.com/rxtech-lab/argo-maker/internal/journal"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/market"
	"github.com/rxtech-lab/argo-maker/internal/market/paper"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// lastPriceEstimator feeds the venue's own last trade price back as the fair
// value estimate. It exists so the paper loop has something to trade on; real
// estimation strategies plug into the same seam.
type lastPriceEstimator struct {
	confidence decimal.Decimal
}

func (e *lastPriceEstimator) Estimate(ctx context.Context, mkt market.Context, key types.Key) types.Estimation {
	last, err := mkt.LastPrice(ctx, key)
	if err != nil || last.IsNone() {
		return types.Estimation{}
	}

	return types.Estimation{
		Price:      last,
		Confidence: optional.Some(e.confidence),
	}
}

func main() {
	configFlag := flag.String("config", "", "Path to engine YAML config (required)")
	journalFlag := flag.String("journal", "", "Path to journal database (overrides config)")

	flag.Parse()

	if *configFlag == "" {
		fmt.Println("Error: --config flag is required")
		flag.Usage()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*configFlag)
	if err != nil {
		fmt.Printf("Error: failed to read config: %v\n", err)
		os.Exit(1)
	}

	config, err := engine.ParseConfig(raw)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger()
	if err != nil {
		fmt.Printf("Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	journalPath := config.JournalPath
	if *journalFlag != "" {
		journalPath = *journalFlag
	}

	j, err := journal.NewJournal(log, journalPath)
	if err != nil {
		log.Error("Failed to open journal", zap.Error(err))
		os.Exit(1)
	}
	defer j.Close()

	venue := paper.NewVenue(paper.Config{
		BestBid:        decimal.NewFromFloat(99.9),
		BestAsk:        decimal.NewFromFloat(100.1),
		BestBidSize:    decimal.NewFromInt(10),
		BestAskSize:    decimal.NewFromInt(10),
		LastPrice:      decimal.NewFromFloat(100.0),
		TickSize:       decimal.NewFromFloat(0.1),
		LotSize:        decimal.NewFromFloat(0.01),
		CommissionRate: decimal.NewFromFloat(0.001),
		FundingBalance: decimal.NewFromInt(10000),
		Position:       decimal.NewFromInt(1),
	})

	pipeline := engine.NewPipeline(log, venue, config, j)
	estimator := &lastPriceEstimator{confidence: decimal.NewFromFloat(0.5)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Paper trading loop started",
		zap.Int("instruments", len(config.Instruments)),
		zap.Duration("cycle_interval", config.CycleInterval.Duration),
	)

	ticker := time.NewTicker(config.CycleInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down")

			for _, instrument := range config.Instruments {
				stats, statsErr := j.GetCycleStats(instrument.Site, instrument.Instrument)
				if statsErr != nil {
					continue
				}

				log.Info("Session stats",
					zap.String("instrument", instrument.Instrument),
					zap.Int("cycles", stats.Cycles),
					zap.Int("successful", stats.SuccessfulCycles),
					zap.Int("creates", stats.Creates),
					zap.Int("cancels", stats.Cancels),
				)
			}

			return
		case <-ticker.C:
			for _, instrument := range config.Instruments {
				request := instrument.Request(time.Now())
				estimation := estimator.Estimate(ctx, pipeline.Market(), request.Key())
				pipeline.RunCycle(ctx, request, &estimation)
			}
		}
	}
}
