// Package registry holds the canonical configuration of every bot in
// the fleet. The table is assembled once at init and never written
// afterwards, so the accessors are safe for concurrent use without
// locking.
package registry

import "github.com/mirelot/botfleet/metrics"

// BotConfig describes a single bot strategy as presented to the rest
// of the system (dashboards, aggregation, trade routing).
type BotConfig struct {
	ID           string // registry key; always equals the key this record is stored under
	Name         string // display name, not unique
	Description  string
	TPCount      int  // take-profit levels the strategy defines, typically 1–5
	DCACount     int  // DCA add-in levels, typically 0–2
	HasTrailing  bool // strategy moves its stop with favorable price action
	HasBreakeven bool // strategy moves its stop to entry after TP1
	IsActive     bool // counted in live aggregation and display
}

const (
	// DefaultBotID is returned for lookups that miss the table.
	DefaultBotID = "ao"

	// AggregateBotID is the synthetic "combined performance" entry. It
	// is flagged active so dashboards render it, but it is not a real
	// bot and is excluded from active-bot enumeration.
	AggregateBotID = "all"
)

// bots is the source of truth; slice order is display order.
//
// rvn runs a six-level TP ladder and all/ao/zia carry three DCA
// levels, both outside the documented ranges above. The live systems
// depend on the literal numbers, so they stay as-is.
var bots = []BotConfig{
	{
		ID:           AggregateBotID,
		Name:         "All Bots",
		Description:  "Combined performance across all active bots",
		TPCount:      4,
		DCACount:     3,
		HasTrailing:  true,
		HasBreakeven: true,
		IsActive:     true,
	},
	{
		ID:           "ao",
		Name:         "AO",
		Description:  "Primary signal bot trading the AO channel",
		TPCount:      4,
		DCACount:     3,
		HasTrailing:  true,
		HasBreakeven: true,
		IsActive:     true,
	},
	{
		ID:           "hsb",
		Name:         "HSB",
		Description:  "High-frequency scalps on short timeframes",
		TPCount:      3,
		DCACount:     2,
		HasTrailing:  false,
		HasBreakeven: true,
		IsActive:     false,
	},
	{
		ID:           "rya",
		Name:         "Rya",
		Description:  "Swing entries from the Rya signal channel",
		TPCount:      4,
		DCACount:     2,
		HasTrailing:  true,
		HasBreakeven: false,
		IsActive:     false,
	},
	{
		ID:           "rvn",
		Name:         "RVN",
		Description:  "Ladder scaler with an extended TP stack",
		TPCount:      6,
		DCACount:     2,
		HasTrailing:  false,
		HasBreakeven: true,
		IsActive:     false,
	},
	{
		ID:           "fox",
		Name:         "Fox",
		Description:  "Momentum breakouts, single DCA add",
		TPCount:      3,
		DCACount:     1,
		HasTrailing:  true,
		HasBreakeven: true,
		IsActive:     false,
	},
	{
		ID:           "zeii",
		Name:         "Zeii",
		Description:  "Wide-stop position trades, no stop management",
		TPCount:      5,
		DCACount:     2,
		HasTrailing:  false,
		HasBreakeven: false,
		IsActive:     false,
	},
	{
		ID:           "aoalgo",
		Name:         "AO Algo",
		Description:  "Automated variant of AO with no averaging",
		TPCount:      4,
		DCACount:     0,
		HasTrailing:  true,
		HasBreakeven: true,
		IsActive:     false,
	},
	{
		ID:           "zia",
		Name:         "Zia",
		Description:  "Trend follower from the Zia signal channel",
		TPCount:      5,
		DCACount:     3,
		HasTrailing:  true,
		HasBreakeven: true,
		IsActive:     true,
	},
}

var botIndex = make(map[string]BotConfig, len(bots))

func init() {
	active := 0
	for _, b := range bots {
		botIndex[b.ID] = b
		if b.IsActive && b.ID != AggregateBotID {
			active++
		}
	}
	metrics.RegistryActiveBots.Set(float64(active))
}

// GetBotConfig returns the configuration for botID. Unknown IDs,
// including the empty string, map to the DefaultBotID record, so the
// caller always receives a usable BotConfig.
func GetBotConfig(botID string) BotConfig {
	if cfg, ok := botIndex[botID]; ok {
		metrics.RegistryLookups.WithLabelValues("hit").Inc()
		return cfg
	}
	metrics.RegistryLookups.WithLabelValues("fallback").Inc()
	return botIndex[DefaultBotID]
}

// AllBotIDs returns every registry key in definition order. The slice
// is a fresh copy on every call.
func AllBotIDs() []string {
	ids := make([]string, 0, len(bots))
	for _, b := range bots {
		ids = append(ids, b.ID)
	}
	return ids
}

// ActiveBotIDs returns the keys of the live bots in definition order.
// The aggregate entry is skipped even though it is flagged active.
func ActiveBotIDs() []string {
	ids := make([]string, 0, len(bots))
	for _, b := range bots {
		if b.IsActive && b.ID != AggregateBotID {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
