package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.VerificationIssued()
	m.VerificationIssued()
	m.VerificationConsumed()
	m.VerificationExpired()
	m.VerificationsSwept(4)
	m.MailDispatchFailed()
	m.TicketCreated("high")
	m.TicketStatusChanged("open", "resolved")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.verificationIssued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verificationConsumed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verificationExpired))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.verificationSwept))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mailFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticketsCreated.WithLabelValues("high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticketTransitions.WithLabelValues("open", "resolved")))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/tickets/:id", http.StatusOK, 15*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/tickets/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.VerificationIssued()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "helpdesk_verification_issued_total 1")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.VerificationIssued()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.verificationIssued))
}
