// internal/platform/metrics/metrics.go
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/logx"
)

const namespace = "domainsearch"

// Recorder traduce los eventos de una ejecución a métricas Prometheus.
// Implementa ports.Notifier. Cada Recorder tiene su propio registry.
type Recorder struct {
	registry *prometheus.Registry

	// ProbesTotal resultados por stage y outcome (success/failure)
	ProbesTotal *prometheus.CounterVec

	// ProbeDuration duración de cada probe
	ProbeDuration *prometheus.HistogramVec

	// StageDuration duración del último stage completado
	StageDuration *prometheus.GaugeVec

	// StageCandidates candidatos enviados a cada stage
	StageCandidates *prometheus.GaugeVec

	// RunsTotal ejecuciones completadas por modo
	RunsTotal *prometheus.CounterVec
}

// NewRecorder crea un recorder con un registry nuevo.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		ProbesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "probes_total",
				Help:      "Total number of probe results by stage and outcome.",
			},
			[]string{"stage", "outcome"},
		),
		ProbeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "probe_duration_seconds",
				Help:      "Duration of individual probes.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10},
			},
			[]string{"stage"},
		),
		StageDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Wall time of the last completed stage.",
			},
			[]string{"stage"},
		),
		StageCandidates: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stage_candidates",
				Help:      "Number of candidates submitted to the last stage.",
			},
			[]string{"stage"},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of completed runs by mode.",
			},
			[]string{"mode"},
		),
	}
}

// Registry retorna el registry con las métricas del recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Notify implementa ports.Notifier.
func (r *Recorder) Notify(ctx context.Context, event ports.Event) error {
	stage := event.Stage.String()

	switch data := event.Data.(type) {
	case ports.ProbeResultEvent:
		r.ProbesTotal.WithLabelValues(stage, data.Result.Outcome.String()).Inc()
		r.ProbeDuration.WithLabelValues(stage).Observe(data.Result.Duration.Seconds())
	case ports.StageStartedEvent:
		r.StageCandidates.WithLabelValues(stage).Set(float64(data.Total))
	case ports.StageCompletedEvent:
		r.StageDuration.WithLabelValues(stage).Set(data.Duration.Seconds())
	case ports.RunCompletedEvent:
		if data.Report != nil {
			r.RunsTotal.WithLabelValues(data.Report.Mode.String()).Inc()
		}
	}

	return nil
}

// Close implementa ports.Notifier.
func (r *Recorder) Close() error {
	return nil
}

// Handler expone las métricas del recorder en formato Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve sirve /metrics en addr hasta que ctx se cancela.
func (r *Recorder) Serve(ctx context.Context, addr string, logger logx.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
