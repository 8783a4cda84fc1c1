package engine

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/rxtech-lab/argo-maker/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with YAML support for "3s" style strings.
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid duration %q", raw)
	}

	d.Duration = parsed

	return nil
}

// CacheConfig configures the venue read cache.
type CacheConfig struct {
	TTL        Duration `yaml:"ttl"`
	MaxEntries int      `yaml:"max_entries" validate:"gte=0"`
}

// ReconcileConfig configures the agent's reconciliation retry policy.
type ReconcileConfig struct {
	InitialInterval Duration `yaml:"initial_interval"`
	MaxElapsedTime  Duration `yaml:"max_elapsed_time"`
}

// InstrumentConfig carries the per-instrument trading parameters.
type InstrumentConfig struct {
	Site            string  `yaml:"site" validate:"required"`
	Instrument      string  `yaml:"instrument" validate:"required"`
	FundingCurrency string  `yaml:"funding_currency"`
	TradingSpread   float64 `yaml:"trading_spread" validate:"gte=0,lt=1"`
	TradingExposure float64 `yaml:"trading_exposure" validate:"gt=0,lte=1"`
	TradingSplit    int64   `yaml:"trading_split" validate:"gte=1"`
}

// Config is the engine configuration, usually parsed from YAML.
type Config struct {
	Cache         CacheConfig        `yaml:"cache"`
	Reconcile     ReconcileConfig    `yaml:"reconcile"`
	JournalPath   string             `yaml:"journal_path"`
	CycleInterval Duration           `yaml:"cycle_interval"`
	Instruments   []InstrumentConfig `yaml:"instruments" validate:"min=1,dive"`
}

// ParseConfig parses and validates a YAML configuration document.
func ParseConfig(raw []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// applyDefaults fills in unset fields before validation.
func (c *Config) applyDefaults() {
	if c.Cache.TTL.Duration <= 0 {
		c.Cache.TTL.Duration = 3 * time.Second
	}

	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = 64
	}

	if c.Reconcile.InitialInterval.Duration <= 0 {
		c.Reconcile.InitialInterval.Duration = 100 * time.Millisecond
	}

	if c.Reconcile.MaxElapsedTime.Duration <= 0 {
		c.Reconcile.MaxElapsedTime.Duration = 4 * time.Second
	}

	if c.CycleInterval.Duration <= 0 {
		c.CycleInterval.Duration = 5 * time.Second
	}

	for i := range c.Instruments {
		if c.Instruments[i].TradingSplit < 1 {
			c.Instruments[i].TradingSplit = 1
		}
	}
}

// Request builds the per-cycle Request for one configured instrument.
func (i *InstrumentConfig) Request(now time.Time) *types.Request {
	return &types.Request{
		Site:            i.Site,
		Instrument:      i.Instrument,
		CurrentTime:     now,
		TargetTime:      now,
		TradingSpread:   optional.Some(decimal.NewFromFloat(i.TradingSpread)),
		TradingExposure: optional.Some(decimal.NewFromFloat(i.TradingExposure)),
		TradingSplit:    i.TradingSplit,
		FundingCurrency: i.FundingCurrency,
	}
}
