// internal/probe/dns.go
package probe

import (
	"context"
	"net"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
	"domainsearch/internal/platform/registry"
)

// DNSProbeName es el nombre con el que se registra el probe de resolución.
const DNSProbeName = "dns"

func init() {
	if err := registry.Global().Register(
		DNSProbeName,
		func(cfg ports.ProbeConfig, logger logx.Logger) (ports.Prober, error) {
			if cfg.Resolver == "" {
				return NewDNSProbe(nil, logger), nil
			}
			direct, err := NewDirectResolver(cfg.Resolver, cfg.Timeout)
			if err != nil {
				return nil, err
			}
			return NewDNSProbe(direct, logger), nil
		},
		ports.ProbeMetadata{
			Name:        DNSProbeName,
			Description: "DNS resolution (system resolver or a direct server)",
			Stage:       domain.StageResolve,
		},
	); err != nil {
		logx.New().Warn("failed to register dns probe", "error", err.Error())
	}
}

// HostResolver es la parte de net.Resolver que usa el probe.
type HostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DNSProbe resuelve un candidato. Success si la resolución devuelve al menos
// una dirección; cualquier error (NXDOMAIN, SERVFAIL, red) es Failure.
type DNSProbe struct {
	resolver HostResolver
	logger   logx.Logger
}

// NewDNSProbe crea el probe. Con resolver nil usa el resolver del sistema.
func NewDNSProbe(resolver HostResolver, logger logx.Logger) *DNSProbe {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if logger == nil {
		logger = logx.New()
	}
	return &DNSProbe{
		resolver: resolver,
		logger:   logger.With("probe", DNSProbeName),
	}
}

// Name implementa ports.Prober.
func (p *DNSProbe) Name() string {
	return DNSProbeName
}

// Probe implementa ports.Prober. Solo aplica el deadline que trae ctx.
func (p *DNSProbe) Probe(ctx context.Context, c domain.Candidate) domain.ProbeResult {
	start := time.Now()

	addrs, err := p.resolver.LookupHost(ctx, string(c))
	if err != nil {
		p.logger.Debug("lookup failed", "candidate", c, "error", err.Error())
		return domain.NewFailure(c, DNSProbeName, errors.Classify(err), time.Since(start))
	}
	if len(addrs) == 0 {
		return domain.NewFailure(c, DNSProbeName, errors.ErrNotFound, time.Since(start))
	}

	p.logger.Debug("resolved", "candidate", c, "addrs", len(addrs))
	return domain.NewSuccess(c, DNSProbeName, time.Since(start))
}
