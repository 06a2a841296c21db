// internal/core/ports/prober.go
package ports

import (
	"context"
	"time"

	"domainsearch/internal/core/domain"
)

// Prober es el port para un chequeo bloqueante sobre un candidato
// (resolución DNS, conexión TCP, ...).
//
// Probe nunca debe devolver un error: todo fallo se expresa como
// domain.OutcomeFailure en el resultado. Debe respetar la cancelación de ctx.
type Prober interface {
	// Name retorna el nombre del probe (ej: "dns", "port")
	Name() string

	// Probe ejecuta un único intento contra el candidato
	Probe(ctx context.Context, c domain.Candidate) domain.ProbeResult
}

// ProberFunc adapta una función a Prober.
type ProberFunc struct {
	ProbeName string
	Fn        func(ctx context.Context, c domain.Candidate) domain.ProbeResult
}

// Name implementa Prober.
func (p ProberFunc) Name() string {
	return p.ProbeName
}

// Probe implementa Prober.
func (p ProberFunc) Probe(ctx context.Context, c domain.Candidate) domain.ProbeResult {
	return p.Fn(ctx, c)
}

// ProbeConfig es la configuración con la que el registry construye un probe.
type ProbeConfig struct {
	// Timeout deadline de conexión / intercambio
	Timeout time.Duration

	// Resolver servidor DNS host:port ("" = resolver del sistema)
	Resolver string

	// Port puerto TCP sondeado (0 = 443)
	Port int
}

// ProbeMetadata describe un probe registrado.
type ProbeMetadata struct {
	Name        string
	Description string
	Stage       domain.Stage
}
