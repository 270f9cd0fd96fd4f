package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.RPCs.WithLabelValues("/moneyquest.v1.SplitService/Settle", "ok").Inc()
	m.RPCs.WithLabelValues("/moneyquest.v1.SplitService/Settle", "ok").Inc()
	m.RPCDuration.WithLabelValues("/moneyquest.v1.SplitService/Settle").Observe(0.01)

	if got := testutil.ToFloat64(m.RPCs.WithLabelValues("/moneyquest.v1.SplitService/Settle", "ok")); got != 2 {
		t.Errorf("rpc count = %v, want 2", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{"moneyquest_rpc_requests_total", "moneyquest_rpc_duration_seconds", "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
