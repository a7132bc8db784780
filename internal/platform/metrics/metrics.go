package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the auth service.
type Metrics struct {
	SignIns                  *prometheus.CounterVec
	SignUps                  *prometheus.CounterVec
	AuthFailures             *prometheus.CounterVec
	OTPDispatched            prometheus.Counter
	AnonymousSessionsCreated prometheus.Counter
	AnonymousSessionsCleaned prometheus.Counter
	TokensRefreshed          prometheus.Counter
	TokensBlacklisted        prometheus.Counter
	RateLimited              *prometheus.CounterVec
	IdentityProviderLatency  *prometheus.HistogramVec
	EndpointLatency          *prometheus.HistogramVec
	CleanupRuns              *prometheus.CounterVec
	CleanupDuration          prometheus.Histogram
	PoolConnections          *prometheus.GaugeVec
	PoolWaits                *prometheus.CounterVec
}

// PoolSnapshot is a point-in-time view of a connection pool. Waits is
// cumulative; the delta since the previous snapshot is what gets counted.
type PoolSnapshot struct {
	Total int
	Idle  int
	InUse int
	Waits uint64
}

// New creates the metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignIns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_signins_total",
			Help: "Successful sign-ins, labeled by method",
		}, []string{"method"}),
		SignUps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_signups_total",
			Help: "Accounts created, labeled by method",
		}, []string{"method"}),
		AuthFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Authentication failures, labeled by error code",
		}, []string{"code"}),
		OTPDispatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_otp_dispatched_total",
			Help: "OTP dispatches accepted by the identity provider",
		}),
		AnonymousSessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_anonymous_sessions_created_total",
			Help: "Anonymous guest sessions created",
		}),
		AnonymousSessionsCleaned: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_anonymous_sessions_cleaned_total",
			Help: "Expired anonymous sessions deleted by cleanup",
		}),
		TokensRefreshed: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_tokens_refreshed_total",
			Help: "Successful token refreshes",
		}),
		TokensBlacklisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "auth_tokens_blacklisted_total",
			Help: "Tokens added to the revocation list",
		}),
		RateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_rate_limited_total",
			Help: "Requests rejected by a rate limiter, labeled by limiter",
		}, []string{"limiter"}),
		IdentityProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auth_identity_provider_latency_seconds",
			Help:    "Latency of identity provider calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auth_endpoint_latency_seconds",
			Help:    "Latency of HTTP endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		CleanupRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_session_cleanup_runs_total",
			Help: "Anonymous session cleanup runs, labeled by status",
		}, []string{"status"}),
		CleanupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "auth_session_cleanup_duration_seconds",
			Help:    "Duration of anonymous session cleanup runs",
			Buckets: prometheus.DefBuckets,
		}),
		PoolConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "auth_pool_connections",
			Help: "Connections held by a client pool, labeled by pool and state",
		}, []string{"pool", "state"}),
		PoolWaits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_pool_waits_total",
			Help: "Times a caller had to wait for a pooled connection, labeled by pool",
		}, []string{"pool"}),
	}
}

func (m *Metrics) IncrementSignIn(method string) {
	m.SignIns.WithLabelValues(method).Inc()
}

func (m *Metrics) IncrementSignUp(method string) {
	m.SignUps.WithLabelValues(method).Inc()
}

func (m *Metrics) IncrementAuthFailure(code string) {
	m.AuthFailures.WithLabelValues(code).Inc()
}

func (m *Metrics) IncrementOTPDispatched() {
	m.OTPDispatched.Inc()
}

func (m *Metrics) IncrementAnonymousSessionsCreated() {
	m.AnonymousSessionsCreated.Inc()
}

func (m *Metrics) AddAnonymousSessionsCleaned(n int) {
	m.AnonymousSessionsCleaned.Add(float64(n))
}

func (m *Metrics) IncrementTokensRefreshed() {
	m.TokensRefreshed.Inc()
}

func (m *Metrics) IncrementTokensBlacklisted() {
	m.TokensBlacklisted.Inc()
}

func (m *Metrics) IncrementRateLimited(limiter string) {
	m.RateLimited.WithLabelValues(limiter).Inc()
}

func (m *Metrics) ObserveIdentityProviderLatency(operation string, seconds float64) {
	m.IdentityProviderLatency.WithLabelValues(operation).Observe(seconds)
}

func (m *Metrics) ObserveEndpointLatency(endpoint string, seconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metrics) ObserveCleanupRun(status string, seconds float64) {
	m.CleanupRuns.WithLabelValues(status).Inc()
	m.CleanupDuration.Observe(seconds)
}

// RecordPool publishes the current snapshot and counts waits since prev.
func (m *Metrics) RecordPool(pool string, cur, prev PoolSnapshot) {
	m.PoolConnections.WithLabelValues(pool, "total").Set(float64(cur.Total))
	m.PoolConnections.WithLabelValues(pool, "idle").Set(float64(cur.Idle))
	m.PoolConnections.WithLabelValues(pool, "in_use").Set(float64(cur.InUse))
	if cur.Waits > prev.Waits {
		m.PoolWaits.WithLabelValues(pool).Add(float64(cur.Waits - prev.Waits))
	}
}
