package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	AccountsProvisioned *prometheus.CounterVec
	AccountsDeleted     *prometheus.CounterVec
	ProvisionFailures   *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AccountsProvisioned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hospital_accounts_provisioned_total",
			Help: "Total number of accounts provisioned, by role",
		}, []string{"role"}),
		AccountsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hospital_accounts_deleted_total",
			Help: "Total number of accounts deleted, by role",
		}, []string{"role"}),
		ProvisionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hospital_account_provision_failures_total",
			Help: "Total number of failed account provisioning attempts, by role and stage",
		}, []string{"role", "stage"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hospital_http_requests_total",
			Help: "Total number of HTTP requests, by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hospital_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) IncrementAccountsProvisioned(role string) {
	m.AccountsProvisioned.WithLabelValues(role).Inc()
}

func (m *Metrics) IncrementAccountsDeleted(role string) {
	m.AccountsDeleted.WithLabelValues(role).Inc()
}

// IncrementProvisionFailures records a failure at the given provisioning
// stage (identity, role, account).
func (m *Metrics) IncrementProvisionFailures(role, stage string) {
	m.ProvisionFailures.WithLabelValues(role, stage).Inc()
}
