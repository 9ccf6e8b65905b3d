package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PaymentsInitiated      prometheus.Counter
	PaymentConfirmations   *prometheus.CounterVec
	DuplicateConfirmations prometheus.Counter
	CertificatesIssued     prometheus.Counter
	CertificateEmailsSent  prometheus.Counter
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PaymentsInitiated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookable_payments_initiated_total",
			Help: "Total number of push-payment requests accepted by the gateway",
		}),
		PaymentConfirmations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookable_payment_confirmations_total",
			Help: "Total number of payment confirmations applied, by terminal outcome",
		}, []string{"outcome"}),
		DuplicateConfirmations: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookable_duplicate_confirmations_total",
			Help: "Total number of confirmation deliveries ignored as duplicates",
		}),
		CertificatesIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookable_certificates_issued_total",
			Help: "Total number of certificates issued",
		}),
		CertificateEmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookable_certificate_emails_sent_total",
			Help: "Total number of certificate emails dispatched",
		}),
	}
}

func (m *Metrics) ConfirmationApplied(success bool) {
	outcome := "completed"
	if !success {
		outcome = "failed"
	}
	m.PaymentConfirmations.WithLabelValues(outcome).Inc()
}
