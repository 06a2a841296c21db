// internal/probe/dns_test.go
package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/registry"
	"domainsearch/internal/testutil"
)

// fakeResolver responde desde un mapa; los hosts en errs devuelven ese error.
type fakeResolver struct {
	hosts map[string][]string
	errs  map[string]error
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.errs[host]; ok {
		return nil, err
	}
	if addrs, ok := f.hosts[host]; ok {
		return addrs, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		hosts: map[string][]string{
			"a.example":     {"192.0.2.1"},
			"multi.example": {"192.0.2.1", "2001:db8::1"},
			"empty.example": {},
		},
		errs: map[string]error{
			"servfail.example": &net.DNSError{Err: "server misbehaving", Name: "servfail.example", IsTemporary: true},
			"timeout.example":  &net.DNSError{Err: "i/o timeout", Name: "timeout.example", IsTimeout: true},
		},
	}
}

func TestDNSProbe_Name(t *testing.T) {
	p := NewDNSProbe(newFakeResolver(), testutil.NewTestLogger())
	testutil.AssertEqual(t, p.Name(), "dns", "probe name")
}

func TestDNSProbe_Probe(t *testing.T) {
	p := NewDNSProbe(newFakeResolver(), testutil.NewTestLogger())

	tests := []struct {
		name      string
		candidate domain.Candidate
		want      domain.Outcome
		errKind   error
	}{
		{"resolves", "a.example", domain.OutcomeSuccess, nil},
		{"several addresses", "multi.example", domain.OutcomeSuccess, nil},
		{"nxdomain", "b.example", domain.OutcomeFailure, errors.ErrNotFound},
		{"no addresses", "empty.example", domain.OutcomeFailure, errors.ErrNotFound},
		{"servfail", "servfail.example", domain.OutcomeFailure, errors.ErrNotFound},
		{"resolver timeout", "timeout.example", domain.OutcomeFailure, errors.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Probe(context.Background(), tt.candidate)

			testutil.AssertEqual(t, res.Candidate, tt.candidate, "candidate")
			testutil.AssertEqual(t, res.Outcome, tt.want, "outcome")
			testutil.AssertEqual(t, res.Probe, "dns", "probe name")
			if tt.errKind == nil {
				testutil.AssertNoError(t, res.Err, "success carries no error")
				return
			}
			testutil.AssertTrue(t, errors.Is(res.Err, tt.errKind), "error kind: "+res.Err.Error())
		})
	}
}

// NXDOMAIN y fallos transitorios no se distinguen en el outcome.
func TestDNSProbe_ConflatesErrorClasses(t *testing.T) {
	p := NewDNSProbe(newFakeResolver(), testutil.NewTestLogger())
	ctx := context.Background()

	notFound := p.Probe(ctx, "b.example")
	transient := p.Probe(ctx, "servfail.example")

	testutil.AssertEqual(t, notFound.Outcome, transient.Outcome, "same outcome for both classes")
	testutil.AssertFalse(t, notFound.Succeeded(), "not found is a failure")
}

func TestDNSProbe_Idempotent(t *testing.T) {
	p := NewDNSProbe(newFakeResolver(), testutil.NewTestLogger())

	for _, c := range []domain.Candidate{"a.example", "b.example"} {
		first := p.Probe(context.Background(), c)
		second := p.Probe(context.Background(), c)
		testutil.AssertEqual(t, first.Outcome, second.Outcome, "stable outcome for "+string(c))
	}
}

func TestDNSProbe_CanceledContext(t *testing.T) {
	p := NewDNSProbe(newFakeResolver(), testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := p.Probe(ctx, "a.example")
	testutil.AssertFalse(t, res.Succeeded(), "canceled lookup fails")
	testutil.AssertTrue(t, errors.IsCanceled(res.Err), "canceled error kind")
}

func TestDNSProbe_SystemResolver(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the system resolver")
	}

	p := NewDNSProbe(nil, testutil.NewTestLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := p.Probe(ctx, "localhost")
	testutil.AssertTrue(t, res.Succeeded(), "localhost resolves")

	// RFC 6761: .invalid nunca resuelve
	res = p.Probe(ctx, "domainsearch.invalid")
	testutil.AssertFalse(t, res.Succeeded(), ".invalid does not resolve")
}

func TestRegistry_BuildsDNSProbe(t *testing.T) {
	testutil.AssertTrue(t, registry.Global().IsRegistered(DNSProbeName), "dns probe registered on import")

	name, ok := registry.Global().ForStage(domain.StageResolve)
	testutil.AssertTrue(t, ok, "resolve stage has a probe")
	testutil.AssertEqual(t, name, DNSProbeName, "resolve stage probe")

	prober, err := registry.Global().Build(DNSProbeName, ports.ProbeConfig{}, testutil.NewTestLogger())
	testutil.AssertNoError(t, err, "system backend")
	testutil.AssertEqual(t, prober.Name(), DNSProbeName, "built probe name")

	_, err = registry.Global().Build(DNSProbeName, ports.ProbeConfig{Resolver: "not-a-server"}, testutil.NewTestLogger())
	testutil.AssertError(t, err, "invalid direct resolver")
	testutil.AssertTrue(t, errors.IsInvalidInput(err), "invalid input kind")
}
