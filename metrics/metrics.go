package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RegistryLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "botfleet_registry_lookups_total",
			Help: "Total registry lookups, labeled hit or fallback.",
		},
		[]string{"outcome"},
	)

	RegistryActiveBots = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "botfleet_registry_active_bots",
			Help: "Number of live bots in the registry (aggregate excluded).",
		},
	)

	SettingsReloads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "botfleet_settings_reloads_total",
			Help: "Times runtime settings were loaded from the environment.",
		},
	)
)

func init() {
	prometheus.MustRegister(RegistryLookups, RegistryActiveBots, SettingsReloads)
}
