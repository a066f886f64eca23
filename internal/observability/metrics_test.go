package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordSyncRun("completed", "manual", 2*time.Second)
	m.RecordSyncRun("completed", "manual", time.Second)
	m.IncrCompanyOutcome("imported")
	m.ObservePSARequest("/company/companies", 200, 10*time.Millisecond)
	m.ObservePSARequest("/company/companies", 0, 10*time.Millisecond)
	m.IncrGapReport()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("completed", "manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.companiesSynced.WithLabelValues("imported")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.psaRequests.WithLabelValues("/company/companies", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.psaRequests.WithLabelValues("/company/companies", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gapReports))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()
	a.IncrGapReport()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.gapReports))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.gapReports))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTPRequest("GET", "/api/v1/customers", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "stack_tracker_http_request_duration_seconds")
}

func TestInitTracer_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := InitTracer("", "stack-tracker")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
