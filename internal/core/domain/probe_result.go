// internal/core/domain/probe_result.go
package domain

import (
	"fmt"
	"time"
)

// ProbeResult es el resultado inmutable de ejecutar un probe sobre un candidato.
// Err es solo diagnóstico: el contrato es Outcome.
type ProbeResult struct {
	Candidate Candidate
	Outcome   Outcome
	Probe     string
	Err       error
	Duration  time.Duration
}

// NewSuccess crea un resultado exitoso.
func NewSuccess(c Candidate, probe string, d time.Duration) ProbeResult {
	return ProbeResult{
		Candidate: c,
		Outcome:   OutcomeSuccess,
		Probe:     probe,
		Duration:  d,
	}
}

// NewFailure crea un resultado fallido con la causa (puede ser nil).
func NewFailure(c Candidate, probe string, err error, d time.Duration) ProbeResult {
	return ProbeResult{
		Candidate: c,
		Outcome:   OutcomeFailure,
		Probe:     probe,
		Err:       err,
		Duration:  d,
	}
}

// Succeeded indica si el outcome es éxito.
func (r ProbeResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// String retorna un resumen legible del resultado.
func (r ProbeResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s %s (%v)", r.Probe, r.Candidate, r.Outcome, r.Err)
	}
	return fmt.Sprintf("%s %s %s", r.Probe, r.Candidate, r.Outcome)
}
