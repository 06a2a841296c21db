// internal/probe/direct.go
package probe

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/validator"
)

// DirectResolver consulta un servidor DNS concreto (host:port) sin pasar por
// el resolver del sistema. Implementa HostResolver.
type DirectResolver struct {
	server string
	client *dns.Client
}

// NewDirectResolver crea un resolver contra server. timeout acota cada
// intercambio; con 0 se usa el default de miekg/dns.
func NewDirectResolver(server string, timeout time.Duration) (*DirectResolver, error) {
	if !validator.IsHostPort(server) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "resolver %q must be host:port", server)
	}

	return &DirectResolver{
		server: server,
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
	}, nil
}

// Server retorna la dirección del servidor consultado.
func (r *DirectResolver) Server() string {
	return r.server
}

// LookupHost pregunta A y después AAAA. Devuelve las direcciones de la primera
// respuesta que contenga alguna.
func (r *DirectResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	var lastErr error

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		addrs, err := r.query(ctx, host, qtype)
		if err != nil {
			lastErr = err
			// NXDOMAIN vale para cualquier tipo de registro
			var dnsErr *net.DNSError
			if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
				return nil, err
			}
			continue
		}
		if len(addrs) > 0 {
			return addrs, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, Server: r.server, IsNotFound: true}
}

func (r *DirectResolver) query(ctx context.Context, host string, qtype uint16) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), qtype)
	msg.RecursionDesired = true

	in, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, &net.DNSError{Err: "no such host", Name: host, Server: r.server, IsNotFound: true}
	default:
		return nil, &net.DNSError{
			Err:         dns.RcodeToString[in.Rcode],
			Name:        host,
			Server:      r.server,
			IsTemporary: in.Rcode == dns.RcodeServerFailure,
		}
	}

	addrs := make([]string, 0, len(in.Answer))
	for _, rr := range in.Answer {
		switch v := rr.(type) {
		case *dns.A:
			addrs = append(addrs, v.A.String())
		case *dns.AAAA:
			addrs = append(addrs, v.AAAA.String())
		}
	}
	return addrs, nil
}
