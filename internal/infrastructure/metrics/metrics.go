// Package metrics records solve timings in an isolated Prometheus registry
// and writes them in the text exposition format.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

const namespace = "aoc"

// Recorder implements ports.Recorder.
type Recorder struct {
	Registry *prometheus.Registry

	// Duration observes seconds spent per part. Labels: day, part.
	Duration *prometheus.HistogramVec
	// Total counts solved parts. Labels: day, part, status (ok, error).
	Total *prometheus.CounterVec
}

// New builds a Recorder on its own registry.
func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent solving one puzzle part.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"day", "part"}),
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_total",
			Help:      "Puzzle parts solved, by outcome.",
		}, []string{"day", "part", "status"}),
	}
	r.Registry.MustRegister(r.Duration, r.Total)
	return r
}

func (r *Recorder) Observe(day int, part domain.Part, d time.Duration, err error) {
	ds, ps := strconv.Itoa(day), part.String()
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.Duration.WithLabelValues(ds, ps).Observe(d.Seconds())
	r.Total.WithLabelValues(ds, ps, status).Inc()
}

// WriteFile writes every collected metric to path, replacing it atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}

// Nop discards observations.
type Nop struct{}

func (Nop) Observe(int, domain.Part, time.Duration, error) {}

var (
	_ ports.Recorder = (*Recorder)(nil)
	_ ports.Recorder = Nop{}
)
