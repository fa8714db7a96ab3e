package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/petuhovskiy/wrand/internal/randomizer"
)

// MaxIndexLabels bounds the number of "index" label values. Positions at or
// above it are counted under "overflow".
const MaxIndexLabels = 100

// Randomizer exports randomizer activity to prometheus. It implements randomizer.Observer.
type Randomizer struct {
	recomputations prometheus.Counter
	totalWeight    prometheus.Gauge
	selections     *prometheus.CounterVec
	failures       *prometheus.CounterVec
}

var _ randomizer.Observer = (*Randomizer)(nil)

func NewRandomizer(reg prometheus.Registerer) *Randomizer {
	f := promauto.With(reg)
	return &Randomizer{
		recomputations: f.NewCounter(prometheus.CounterOpts{
			Name: "wrand_total_recomputations_total",
			Help: "Number of times the total weight was recomputed",
		}),
		totalWeight: f.NewGauge(prometheus.GaugeOpts{
			Name: "wrand_total_weight",
			Help: "Last computed total weight of the population",
		}),
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wrand_selections_total",
			Help: "Drawn items by their position in the population, capped at MaxIndexLabels",
		}, []string{"index"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wrand_failures_total",
			Help: "Failed draws by reason",
		}, []string{"reason"}),
	}
}

func (m *Randomizer) TotalComputed(total float64) {
	m.recomputations.Inc()
	m.totalWeight.Set(total)
}

func (m *Randomizer) Selected(index int) {
	m.selections.WithLabelValues(indexLabel(index)).Inc()
}

func indexLabel(index int) string {
	if index >= MaxIndexLabels {
		return "overflow"
	}
	return strconv.Itoa(index)
}

func (m *Randomizer) Failed(err error) {
	m.failures.WithLabelValues(failureReason(err)).Inc()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, randomizer.ErrInvalidCount):
		return "invalid_count"
	case errors.Is(err, randomizer.ErrEmptyPopulation):
		return "empty_population"
	default:
		return "other"
	}
}
