// internal/platform/ui/presenter.go
package ui

import (
	"time"

	"domainsearch/internal/core/domain"
)

// Format define el formato de salida en terminal
type Format string

const (
	FormatPretty Format = "pretty" // Colores y tablas con pterm (default)
	FormatText   Format = "text"   // Líneas logfmt sin formato visual
	FormatJSON   Format = "json"   // Una línea JSON por evento
)

// IsValid verifica si el formato es conocido.
func (f Format) IsValid() bool {
	switch f {
	case FormatPretty, FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Presenter define la interfaz para presentar el progreso de una ejecución
// en la terminal. Las llamadas llegan desde un solo goroutine.
type Presenter interface {
	// Start inicia la presentación con información de la ejecución
	Start(info RunInfo)

	// StartStage notifica el inicio de un stage
	StartStage(stage StageInfo)

	// Result muestra el resultado de un probe en cuanto llega
	Result(stage domain.Stage, result domain.ProbeResult)

	// FinishStage notifica la finalización de un stage
	FinishStage(stats StageStats)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con el resumen final
	Finish(stats RunStats)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene información inicial de la ejecución
type RunInfo struct {
	RunID      string
	Mode       domain.RunMode
	Base       string
	Candidates int
	Workers    int
	Timeout    time.Duration
	CheckSite  bool
}

// StageInfo contiene información de un stage
type StageInfo struct {
	Stage   domain.Stage
	Probe   string
	Total   int
	Workers int
	Timeout time.Duration
}

// StageStats contiene el resultado agregado de un stage
type StageStats struct {
	Stage     domain.Stage
	Probe     string
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// RunStats contiene estadísticas finales de la ejecución
type RunStats struct {
	RunID      string
	Candidates int
	Resolve    *StageStats
	HTTPS      *StageStats
	Duration   time.Duration
}

// NewRunStats resume un reporte para el presenter.
func NewRunStats(report *domain.Report) RunStats {
	stats := RunStats{
		RunID:      report.ID,
		Candidates: report.Candidates,
		Duration:   report.Metadata.Duration,
	}
	if report.Resolve != nil {
		stats.Resolve = stageStatsOf(report.Resolve)
	}
	if report.HTTPS != nil {
		stats.HTTPS = stageStatsOf(report.HTTPS)
	}
	return stats
}

func stageStatsOf(s *domain.StageReport) *StageStats {
	return &StageStats{
		Stage:     s.Stage,
		Probe:     s.Probe,
		Succeeded: len(s.Succeeded),
		Failed:    len(s.Failed),
		Duration:  s.Duration,
	}
}

// New crea el presenter para format. quiet tiene prioridad sobre el formato.
func New(format Format, quiet bool) Presenter {
	if quiet {
		return NewNoopPresenter()
	}
	switch format {
	case FormatText:
		return NewRawPresenter(LogFormatText, nil)
	case FormatJSON:
		return NewRawPresenter(LogFormatJSON, nil)
	default:
		return NewPTermPresenter(nil)
	}
}
