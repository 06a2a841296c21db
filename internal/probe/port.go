// internal/probe/port.go
package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
	"domainsearch/internal/platform/registry"
)

const (
	// PortProbeName es el nombre con el que se registra el probe TCP.
	PortProbeName = "port"

	// HTTPSPort puerto sondeado en producción.
	HTTPSPort = 443
)

func init() {
	if err := registry.Global().Register(
		PortProbeName,
		func(cfg ports.ProbeConfig, logger logx.Logger) (ports.Prober, error) {
			if err := registry.ValidateTimeout(cfg.Timeout); err != nil {
				return nil, err
			}
			port := cfg.Port
			if port == 0 {
				port = HTTPSPort
			}
			if err := registry.ValidatePort(port); err != nil {
				return nil, err
			}
			return NewPortProbe(cfg.Timeout, port, logger), nil
		},
		ports.ProbeMetadata{
			Name:        PortProbeName,
			Description: "TCP connect to port 443, closed immediately",
			Stage:       domain.StageHTTPS,
		},
	); err != nil {
		logx.New().Warn("failed to register port probe", "error", err.Error())
	}
}

// PortProbe comprueba si hay algo escuchando en candidate:port.
// No hay handshake TLS: solo se abre y se cierra la conexión.
type PortProbe struct {
	dialer *net.Dialer
	port   string
	logger logx.Logger
}

// NewPortProbe crea el probe. timeout acota el connect.
func NewPortProbe(timeout time.Duration, port int, logger logx.Logger) *PortProbe {
	if port <= 0 {
		port = HTTPSPort
	}
	if logger == nil {
		logger = logx.New()
	}
	return &PortProbe{
		dialer: &net.Dialer{Timeout: timeout},
		port:   strconv.Itoa(port),
		logger: logger.With("probe", PortProbeName),
	}
}

// Name implementa ports.Prober.
func (p *PortProbe) Name() string {
	return PortProbeName
}

// Timeout retorna el timeout de conexión configurado.
func (p *PortProbe) Timeout() time.Duration {
	return p.dialer.Timeout
}

// Probe implementa ports.Prober.
func (p *PortProbe) Probe(ctx context.Context, c domain.Candidate) domain.ProbeResult {
	start := time.Now()

	conn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(string(c), p.port))
	if err != nil {
		p.logger.Debug("connect failed", "candidate", c, "error", err.Error())
		return domain.NewFailure(c, PortProbeName, errors.Classify(err), time.Since(start))
	}
	_ = conn.Close()

	return domain.NewSuccess(c, PortProbeName, time.Since(start))
}
