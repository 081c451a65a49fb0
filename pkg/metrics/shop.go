package metrics

import "github.com/prometheus/client_golang/prometheus"

// ShopMetrics counts catalog and cart domain events.
type ShopMetrics struct {
	events *prometheus.CounterVec
}

// NewShopMetrics registers the domain event counter on the provided registerer.
func NewShopMetrics(reg prometheus.Registerer) *ShopMetrics {
	if reg == nil {
		return &ShopMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Catalog and cart mutations by event.",
	}, []string{"event"})
	reg.MustRegister(events)
	return &ShopMetrics{events: events}
}

// IncEvent increments the counter for the named event.
func (s *ShopMetrics) IncEvent(event string) {
	if s == nil || s.events == nil {
		return
	}
	s.events.WithLabelValues(normalizeLabel(event)).Inc()
}
