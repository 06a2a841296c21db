// internal/probe/port_test.go
package probe

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/registry"
	"domainsearch/internal/testutil"
)

// listen abre un listener TCP local y retorna su puerto.
func listen(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	testutil.AssertNoError(t, err, "listen tcp")
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port
}

// closedPort retorna un puerto local sin nadie escuchando.
func closedPort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	testutil.AssertNoError(t, err, "listen tcp")
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func TestNewPortProbe(t *testing.T) {
	p := NewPortProbe(3*time.Second, 0, nil)
	testutil.AssertEqual(t, p.Name(), "port", "probe name")
	testutil.AssertEqual(t, p.port, strconv.Itoa(HTTPSPort), "default port")
	testutil.AssertEqual(t, p.Timeout(), 3*time.Second, "timeout")
}

func TestPortProbe_ListeningVsClosed(t *testing.T) {
	open := NewPortProbe(time.Second, listen(t), testutil.NewTestLogger())
	closed := NewPortProbe(time.Second, closedPort(t), testutil.NewTestLogger())

	res := open.Probe(context.Background(), "127.0.0.1")
	testutil.AssertTrue(t, res.Succeeded(), "listening port succeeds")
	testutil.AssertEqual(t, res.Probe, "port", "probe name")

	res = closed.Probe(context.Background(), "127.0.0.1")
	testutil.AssertFalse(t, res.Succeeded(), "closed port fails")
	testutil.AssertTrue(t, errors.IsConnectionFailed(res.Err), "refused kind: "+res.Err.Error())
}

func TestPortProbe_Timeout(t *testing.T) {
	if testing.Short() {
		t.Skip("dials a non-routable address")
	}

	timeout := 200 * time.Millisecond
	p := NewPortProbe(timeout, HTTPSPort, testutil.NewTestLogger())

	// 10.255.255.1 no responde: o timeout o unreachable inmediato
	res := p.Probe(context.Background(), "10.255.255.1")
	testutil.AssertFalse(t, res.Succeeded(), "non-routable address fails")
	testutil.AssertTrue(t, res.Duration < timeout+time.Second, "dial bounded by timeout")
}

func TestPortProbe_UnresolvableHost(t *testing.T) {
	p := NewPortProbe(time.Second, listen(t), testutil.NewTestLogger())

	res := p.Probe(context.Background(), domain.Candidate("domainsearch.invalid"))
	testutil.AssertFalse(t, res.Succeeded(), "dns failure is a failure")
}

func TestPortProbe_Idempotent(t *testing.T) {
	p := NewPortProbe(time.Second, listen(t), testutil.NewTestLogger())

	for i := 0; i < 3; i++ {
		res := p.Probe(context.Background(), "127.0.0.1")
		testutil.AssertTrue(t, res.Succeeded(), "repeat probe succeeds")
	}
}

func TestRegistry_BuildsPortProbe(t *testing.T) {
	name, ok := registry.Global().ForStage(domain.StageHTTPS)
	testutil.AssertTrue(t, ok, "https stage has a probe")
	testutil.AssertEqual(t, name, PortProbeName, "https stage probe")

	_, err := registry.Global().Build(PortProbeName, ports.ProbeConfig{}, testutil.NewTestLogger())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidTimeout), "zero timeout rejected")

	_, err = registry.Global().Build(PortProbeName, ports.ProbeConfig{Timeout: time.Second, Port: 70000}, testutil.NewTestLogger())
	testutil.AssertTrue(t, errors.IsInvalidInput(err), "port out of range")

	prober, err := registry.Global().Build(PortProbeName, ports.ProbeConfig{Timeout: time.Second, Port: listen(t)}, testutil.NewTestLogger())
	testutil.AssertNoError(t, err, "valid config")
	res := prober.Probe(context.Background(), "127.0.0.1")
	testutil.AssertTrue(t, res.Succeeded(), "built probe connects")
}
