package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"checkinn/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample per family so counters are non-zero
	observability.ObserveExternal("stayapi", "create_booking", 201, 12*time.Millisecond)
	observability.ObserveCache("catalog", "hit")
	observability.ObserveSession("uninitialized", "authenticated")
	observability.ObserveBooking("payment_intent", "ok")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, family := range []string{
		"checkinn_external_requests_total",
		"checkinn_cache_events_total",
		"checkinn_session_transitions_total",
		"checkinn_booking_flow_total",
	} {
		if !strings.Contains(out, family) {
			t.Fatalf("expected %s in output", family)
		}
	}
}
