package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("metric family %s not gathered", name)
	return nil
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("/item/{id}", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.Observe("/item/{id}", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.Observe("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/item/{id}", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unknown", http.MethodGet, "404")))

	family := findFamily(t, reg, "shop_http_request_duration_seconds")
	assert.Equal(t, dto.MetricType_HISTOGRAM, family.GetType())
}

func TestHTTPMetricsTrack(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	done := m.Track()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestShopMetricsIncEvent(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewShopMetrics(reg)

	s.IncEvent("cart_created")
	s.IncEvent("cart_created")

	family := findFamily(t, reg, "shop_events_total")
	require.Len(t, family.GetMetric(), 1)
	assert.Equal(t, 2.0, family.GetMetric()[0].GetCounter().GetValue())
}

func TestNilMetricsAreNoops(t *testing.T) {
	var h *HTTPMetrics
	h.Observe("/cart", http.MethodPost, http.StatusCreated, time.Millisecond)
	h.Track()()

	var s *ShopMetrics
	s.IncEvent("item_created")

	NewShopMetrics(nil).IncEvent("item_created")
}

func TestHandlerServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewShopMetrics(reg).IncEvent("item_created")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `shop_events_total{event="item_created"} 1`))
}
