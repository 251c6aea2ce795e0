package metrics

import "github.com/prometheus/client_golang/prometheus"

// Chat search outcome labels.
const (
	SearchOutcomePrimary  = "primary"
	SearchOutcomeFallback = "fallback"
	SearchOutcomeEmpty    = "empty"
)

var chatSearchesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "localeats",
		Name:      "chat_searches_total",
		Help:      "Total number of chat searches by outcome",
	},
	[]string{"outcome"},
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus chat search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(chatSearchesTotal)
	searchMetricsRegistered = true
}

// ObserveSearchOutcome counts one chat search by outcome.
func ObserveSearchOutcome(outcome string) {
	chatSearchesTotal.WithLabelValues(outcome).Inc()
}
