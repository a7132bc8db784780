package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementSignIn("email")
	m.IncrementSignIn("email")
	m.IncrementAuthFailure("INVALID_OTP")
	m.AddAnonymousSessionsCleaned(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SignIns.WithLabelValues("email")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailures.WithLabelValues("INVALID_OTP")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.AnonymousSessionsCleaned))
}
