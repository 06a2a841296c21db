// internal/core/domain/report.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report representa el resultado completo de una ejecución.
type Report struct {
	// ID identificador único de la ejecución
	ID string `json:"id"`

	// Mode origen de los candidatos (search / input)
	Mode RunMode `json:"mode"`

	// Base label base expandido (vacío en modo input)
	Base string `json:"base,omitempty"`

	// Candidates número de candidatos enviados al primer stage
	Candidates int `json:"candidates"`

	// Resolve resultado del stage DNS (nil en modo input)
	Resolve *StageReport `json:"resolve,omitempty"`

	// HTTPS resultado del stage de puerto 443 (nil si no se pidió)
	HTTPS *StageReport `json:"https,omitempty"`

	// Metadata información sobre la ejecución
	Metadata RunMetadata `json:"metadata"`
}

// RunMetadata contiene información sobre la ejecución.
type RunMetadata struct {
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
	Duration    time.Duration     `json:"duration_ns"`
	Workers     int               `json:"workers"`
	Timeout     time.Duration     `json:"timeout_ns"`
	Resolver    string            `json:"resolver"`
	Version     string            `json:"version,omitempty"`
	Environment map[string]string `json:"environment,omitempty"`
}

// StageReport es la partición de un stage serializable.
type StageReport struct {
	Stage     Stage         `json:"stage"`
	Probe     string        `json:"probe"`
	Total     int           `json:"total"`
	Succeeded []string      `json:"succeeded"`
	Failed    []string      `json:"failed"`
	Duration  time.Duration `json:"duration_ns"`
}

// NewReport crea un nuevo reporte con ID único.
func NewReport(mode RunMode, base string) *Report {
	return &Report{
		ID:   uuid.NewString(),
		Mode: mode,
		Base: base,
		Metadata: RunMetadata{
			StartTime:   time.Now(),
			Environment: make(map[string]string),
		},
	}
}

// NewStageReport congela una partición en un StageReport.
func NewStageReport(stage Stage, probe string, p *Partition, d time.Duration) *StageReport {
	return &StageReport{
		Stage:     stage,
		Probe:     probe,
		Total:     p.Total(),
		Succeeded: Strings(p.Succeeded()),
		Failed:    Strings(p.Failed()),
		Duration:  d,
	}
}

// Finalize marca la ejecución como completada.
func (r *Report) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// Found retorna los dominios que resolvieron (o todos los cargados en modo input).
func (r *Report) Found() []string {
	if r.Resolve != nil {
		return r.Resolve.Succeeded
	}
	return nil
}

// Alive retorna los dominios que respondieron en el puerto 443.
func (r *Report) Alive() []string {
	if r.HTTPS != nil {
		return r.HTTPS.Succeeded
	}
	return nil
}

// Summary retorna un resumen legible del reporte.
func (r *Report) Summary() string {
	found, alive := -1, -1
	if r.Resolve != nil {
		found = len(r.Resolve.Succeeded)
	}
	if r.HTTPS != nil {
		alive = len(r.HTTPS.Succeeded)
	}
	return fmt.Sprintf(
		"Report{mode=%s, base=%s, candidates=%d, found=%d, alive=%d, duration=%s}",
		r.Mode,
		r.Base,
		r.Candidates,
		found,
		alive,
		r.Metadata.Duration,
	)
}
