// Package config loads the runtime settings for the trade pipeline from
// the process environment, with an optional .env overlay for local runs.
// Bot-specific capability flags live in the registry package; everything
// here applies fleet-wide.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mirelot/botfleet/logger"
	"github.com/mirelot/botfleet/metrics"
)

// Settings holds every tunable the pipeline reads at startup.
type Settings struct {
	// Discord signal source
	DiscordToken string
	ChannelID    string

	// Bybit account
	BybitAPIKey    string
	BybitAPISecret string
	BybitTestnet   bool

	Category string // bybit product category, e.g. "linear"
	Quote    string // quote asset, upper-cased, e.g. "USDT"

	DefaultLeverage int

	// Exposure limits
	MaxConcurrentTrades int
	MaxTradesPerDay     int

	// Entry handling
	EntryExpirationMin       int
	EntryTooFarPct           float64
	EntryTriggerBufferPct    float64
	EntryLimitPriceOffsetPct float64

	// Stop management
	InitialSLPct    float64
	MoveSLToBEOnTP1 bool

	// TPSplits is the percentage of the position closed at each TP
	// level; the entries must sum to exactly 100, so they are decimals
	// rather than floats.
	TPSplits []decimal.Decimal

	// DCAQtyMults scales each DCA add-in relative to the base quantity.
	DCAQtyMults []float64

	PollSeconds int
	DryRun      bool
}

// Defaults returns the settings used when the environment sets nothing.
func Defaults() Settings {
	return Settings{
		Category:            "linear",
		Quote:               "USDT",
		DefaultLeverage:     5,
		MaxConcurrentTrades: 3,
		MaxTradesPerDay:     20,
		EntryExpirationMin:  180,
		EntryTooFarPct:      0.5,
		InitialSLPct:        19.0,
		MoveSLToBEOnTP1:     true,
		TPSplits: []decimal.Decimal{
			decimal.NewFromInt(30),
			decimal.NewFromInt(30),
			decimal.NewFromInt(30),
			decimal.NewFromInt(10),
		},
		DCAQtyMults: []float64{1.0, 1.0, 1.0},
		PollSeconds: 15,
	}
}

// Load reads settings from the environment on top of Defaults. When
// envPath is non-empty its .env file is applied first; a missing file
// is only a warning, matching how local and deployed runs differ.
func Load(envPath string, log logger.Logger) (*Settings, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			log.Warn("no .env overlay loaded", zap.String("path", envPath), zap.Error(err))
		}
	}

	s := Defaults()
	var err error

	s.DiscordToken = envString("DISCORD_TOKEN", s.DiscordToken)
	s.ChannelID = envString("CHANNEL_ID", s.ChannelID)
	s.BybitAPIKey = envString("BYBIT_API_KEY", s.BybitAPIKey)
	s.BybitAPISecret = envString("BYBIT_API_SECRET", s.BybitAPISecret)
	s.BybitTestnet = envBool("BYBIT_TESTNET", s.BybitTestnet)

	s.Category = envString("CATEGORY", s.Category)
	s.Quote = strings.ToUpper(envString("QUOTE", s.Quote))

	if s.DefaultLeverage, err = envInt("DEFAULT_LEVERAGE", s.DefaultLeverage); err != nil {
		return nil, err
	}
	if s.MaxConcurrentTrades, err = envInt("MAX_CONCURRENT_TRADES", s.MaxConcurrentTrades); err != nil {
		return nil, err
	}
	if s.MaxTradesPerDay, err = envInt("MAX_TRADES_PER_DAY", s.MaxTradesPerDay); err != nil {
		return nil, err
	}
	if s.EntryExpirationMin, err = envInt("ENTRY_EXPIRATION_MIN", s.EntryExpirationMin); err != nil {
		return nil, err
	}
	if s.EntryTooFarPct, err = envFloat("ENTRY_TOO_FAR_PCT", s.EntryTooFarPct); err != nil {
		return nil, err
	}
	if s.EntryTriggerBufferPct, err = envFloat("ENTRY_TRIGGER_BUFFER_PCT", s.EntryTriggerBufferPct); err != nil {
		return nil, err
	}
	if s.EntryLimitPriceOffsetPct, err = envFloat("ENTRY_LIMIT_PRICE_OFFSET_PCT", s.EntryLimitPriceOffsetPct); err != nil {
		return nil, err
	}
	if s.InitialSLPct, err = envFloat("INITIAL_SL_PCT", s.InitialSLPct); err != nil {
		return nil, err
	}
	s.MoveSLToBEOnTP1 = envBool("MOVE_SL_TO_BE_ON_TP1", s.MoveSLToBEOnTP1)

	if raw, ok := os.LookupEnv("TP_SPLITS"); ok {
		if s.TPSplits, err = parseDecimalList(raw); err != nil {
			return nil, errors.Wrap(err, "parse TP_SPLITS")
		}
	}
	if raw, ok := os.LookupEnv("DCA_QTY_MULTS"); ok {
		if s.DCAQtyMults, err = parseFloatList(raw); err != nil {
			return nil, errors.Wrap(err, "parse DCA_QTY_MULTS")
		}
	}

	if s.PollSeconds, err = envInt("POLL_SECONDS", s.PollSeconds); err != nil {
		return nil, err
	}
	s.DryRun = envBool("DRY_RUN", s.DryRun)

	if s.BybitAPIKey == "" || s.BybitAPISecret == "" {
		log.Warn("bybit api key or secret is empty")
	}

	metrics.SettingsReloads.Inc()
	return &s, nil
}

// Validate checks that the loaded values are within sensible bounds and
// returns the first problem found.
func (s *Settings) Validate() error {
	switch s.Category {
	case "linear", "inverse", "spot", "option":
	default:
		return errors.Errorf("Category %q is not a bybit product category", s.Category)
	}
	if s.Quote == "" {
		return errors.New("Quote asset is required")
	}
	if s.DefaultLeverage <= 0 || s.DefaultLeverage > 100 {
		return errors.Errorf("DefaultLeverage (%d) must be >0 and <=100", s.DefaultLeverage)
	}
	if s.MaxConcurrentTrades <= 0 {
		return errors.New("MaxConcurrentTrades must be positive")
	}
	if s.MaxTradesPerDay < s.MaxConcurrentTrades {
		return errors.Errorf("MaxTradesPerDay (%d) cannot be below MaxConcurrentTrades (%d)",
			s.MaxTradesPerDay, s.MaxConcurrentTrades)
	}
	if s.EntryExpirationMin <= 0 {
		return errors.New("EntryExpirationMin must be positive")
	}
	if s.EntryTooFarPct < 0 {
		return errors.New("EntryTooFarPct cannot be negative")
	}
	if s.InitialSLPct <= 0 || s.InitialSLPct > 100 {
		return errors.Errorf("InitialSLPct (%f) must be >0 and <=100", s.InitialSLPct)
	}
	if len(s.TPSplits) == 0 {
		return errors.New("at least one TP split is required")
	}
	sum := decimal.Zero
	for i, split := range s.TPSplits {
		if !split.IsPositive() {
			return errors.Errorf("TP split %d (%s) must be positive", i+1, split)
		}
		sum = sum.Add(split)
	}
	if !sum.Equal(decimal.NewFromInt(100)) {
		return errors.Errorf("TP splits must sum to 100, got %s", sum)
	}
	for i, mult := range s.DCAQtyMults {
		if mult <= 0 {
			return errors.Errorf("DCA multiplier %d (%f) must be positive", i+1, mult)
		}
	}
	if s.PollSeconds <= 0 {
		return errors.New("PollSeconds must be positive")
	}
	return nil
}

func envString(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return strings.TrimSpace(v)
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return f, nil
}

func parseDecimalList(raw string) ([]decimal.Decimal, error) {
	var out []decimal.Decimal
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		d, err := decimal.NewFromString(item)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseFloatList(raw string) ([]float64, error) {
	var out []float64
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		f, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
