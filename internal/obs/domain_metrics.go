package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// LinkCreateTotal counts payment-link creation outcomes.
	LinkCreateTotal *prometheus.CounterVec
	// LinkVerifyTotal counts payment verification outcomes by payment status.
	LinkVerifyTotal *prometheus.CounterVec
	// ProviderCallTotal counts outbound Cielo API calls by endpoint and outcome.
	ProviderCallTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		LinkCreateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_create_total",
			Help:      "Count of payment-link creation outcomes.",
		}, []string{"result"})
		LinkVerifyTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_verify_total",
			Help:      "Count of payment verification outcomes.",
		}, []string{"result", "payment_status"})
		ProviderCallTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_call_total",
			Help:      "Count of outbound provider API calls.",
		}, []string{"endpoint", "result"})

		mustRegisterCollector(reg, LinkCreateTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				LinkCreateTotal = v
			}
		})
		mustRegisterCollector(reg, LinkVerifyTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				LinkVerifyTotal = v
			}
		})
		mustRegisterCollector(reg, ProviderCallTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				ProviderCallTotal = v
			}
		})
	})
}
