package metrics

import (
	"net/http"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escrow"

// Recorder exposes scheduler and event counters in Prometheus format.
type Recorder struct {
	registry     *prometheus.Registry
	sweeps       prometheus.Counter
	evaluated    prometheus.Counter
	tickFailures prometheus.Counter
	events       *prometheus.CounterVec
	payoutErrors prometheus.Counter
}

var _ interfaces.IEscrowMetrics = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_sweeps_total",
			Help:      "Number of scheduler sweeps over active escrows.",
		}),
		evaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_escrows_evaluated_total",
			Help:      "Number of escrows ticked by the scheduler.",
		}),
		tickFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_tick_failures_total",
			Help:      "Number of escrow ticks that failed.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Number of escrow events emitted, by type.",
		}, []string{"type"}),
		payoutErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_errors_total",
			Help:      "Number of payout requests that failed or were rejected.",
		}),
	}
	r.registry.MustRegister(r.sweeps, r.evaluated, r.tickFailures, r.events, r.payoutErrors)
	return r
}

func (r *Recorder) ObserveTick(evaluated, failed int) {
	r.sweeps.Inc()
	r.evaluated.Add(float64(evaluated))
	r.tickFailures.Add(float64(failed))
}

func (r *Recorder) ObserveEvent(eventType entities.EventType) {
	r.events.WithLabelValues(string(eventType)).Inc()
}

func (r *Recorder) ObservePayoutError() {
	r.payoutErrors.Inc()
}

// Handler serves the recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
