package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequests.WithLabelValues(http.MethodGet, "/test/route", "418")
	before := testutil.ToFloat64(counter)

	RecordHTTPRequest(http.MethodGet, "/test/route", http.StatusTeapot, 25*time.Millisecond)
	RecordHTTPRequest(http.MethodGet, "/test/route", http.StatusTeapot, 5*time.Millisecond)

	assert.InDelta(t, before+2, testutil.ToFloat64(counter), 0.0001)
}

func TestLoginAttempts(t *testing.T) {
	counter := LoginAttempts.WithLabelValues("invalid")
	before := testutil.ToFloat64(counter)
	counter.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.0001)
}
