package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters of the workflow engine.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	quotesCreated      prometheus.Counter
	quoteStatusChanges *prometheus.CounterVec
	orderStageMoves    *prometheus.CounterVec
	orderNotesAdded    prometheus.Counter
	depositsCharged    prometheus.Counter
	loginRejections    prometheus.Counter
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		quotesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "grafica_quotes_created_total",
			Help: "Quotes created.",
		}),
		quoteStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "grafica_quote_status_changes_total",
			Help: "Quote status overwrites by target status.",
		}, []string{"status"}),
		orderStageMoves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "grafica_order_stage_moves_total",
			Help: "Production order stage moves by target stage.",
		}, []string{"stage"}),
		orderNotesAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "grafica_order_notes_total",
			Help: "Notes appended to production orders.",
		}),
		depositsCharged: factory.NewCounter(prometheus.CounterOpts{
			Name: "grafica_deposits_charged_total",
			Help: "Deposit payments charged on approved quotes.",
		}),
		loginRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "grafica_login_rejections_total",
			Help: "Failed login attempts.",
		}),
	}
}

func (m *Metrics) QuoteCreated()                { m.quotesCreated.Inc() }
func (m *Metrics) QuoteStatusChanged(st string) { m.quoteStatusChanges.WithLabelValues(st).Inc() }
func (m *Metrics) OrderStageMoved(stage string) { m.orderStageMoves.WithLabelValues(stage).Inc() }
func (m *Metrics) OrderNoteAdded()              { m.orderNotesAdded.Inc() }
func (m *Metrics) DepositCharged()              { m.depositsCharged.Inc() }
func (m *Metrics) LoginRejected()               { m.loginRejections.Inc() }
