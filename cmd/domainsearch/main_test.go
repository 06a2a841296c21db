// cmd/domainsearch/main_test.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"

	"domainsearch/internal/adapters/output"
	"domainsearch/internal/adapters/tld"
	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/config"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
	"domainsearch/internal/testutil"
)

// startZone levanta un DNS UDP local que solo conoce los nombres de zone.
func startZone(t *testing.T, zone map[string]string) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	testutil.AssertNoError(t, err, "listen udp")

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		q := r.Question[0]
		ip, ok := zone[q.Name]
		switch {
		case !ok:
			m.Rcode = dns.RcodeNameError
		case q.Qtype == dns.TypeA:
			rr, _ := dns.NewRR(fmt.Sprintf("%s 60 IN A %s", q.Name, ip))
			m.Answer = append(m.Answer, rr)
		}
		_ = w.WriteMsg(m)
	})

	started := make(chan struct{})
	server := &dns.Server{PacketConn: pc, Handler: handler, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = server.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = server.Shutdown() })

	return pc.LocalAddr().String()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"WORKERS", "TIMEOUT", "CHECK_SITE", "RESOLVER", "TLDS", "TLD_URL", "METRICS_ADDR", "FORMAT", "CONFIG", "LOG_LEVEL"} {
		t.Setenv("DOMAINSEARCH_"+k, "")
	}
}

func TestRun_ExitCodes(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tldPath := filepath.Join(dir, "tlds.txt")
	testutil.AssertNoError(t, os.WriteFile(tldPath, []byte(".com\n"), 0o644), "write tlds")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-h"}, exitOK},
		{"version", []string{"--version"}, exitOK},
		{"unknown flag", []string{"advania", "--bogus"}, exitConfig},
		{"no base", []string{"-q"}, exitConfig},
		{"zero workers", []string{"advania", "-w", "0"}, exitConfig},
		{"zero timeout", []string{"advania", "-T", "0"}, exitConfig},
		{"input without check-site", []string{"-i", "list.txt"}, exitConfig},
		{"missing input file", []string{"-q", "-c", "-i", filepath.Join(dir, "nope.txt")}, exitConfig},
		{"unreachable tld list", []string{"-q", "advania", "--tlds", filepath.Join(dir, "nope.txt"), "--tld-url", "http://127.0.0.1:1/tlds"}, exitConfig},
		{"invalid base", []string{"-q", "bad label", "--tlds", tldPath}, exitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, run(tt.args), tt.want, "exit code")
		})
	}
}

func TestRun_Update(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "# Version 2026101600\nCOM\nNET\n\nIS\n")
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "tlds.txt")
	code := run([]string{"-u", "--tlds", path, "--tld-url", srv.URL})
	testutil.AssertEqual(t, code, exitOK, "exit code")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read tlds")
	testutil.AssertEqual(t, string(data), ".com\n.net\n.is\n", "saved tlds")
}

func TestRun_UpdateFailure(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	code := run([]string{"-u", "--tlds", filepath.Join(t.TempDir(), "tlds.txt"), "--tld-url", srv.URL})
	testutil.AssertEqual(t, code, exitRuntime, "exit code")
}

func TestRun_SearchEndToEnd(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	resolver := startZone(t, map[string]string{
		"advania.test.": "192.0.2.10",
	})

	tldPath := filepath.Join(dir, "tlds.txt")
	testutil.AssertNoError(t, os.WriteFile(tldPath, []byte(".test\n.example\n.invalid\n"), 0o644), "write tlds")

	found := filepath.Join(dir, "found.txt")
	report := filepath.Join(dir, "out", "report.json")

	code := run([]string{
		"advania", "-q", "-T", "1", "-w", "2",
		"--tlds", tldPath,
		"--resolver", resolver,
		"-o", found,
		"--json", report,
	})
	testutil.AssertEqual(t, code, exitOK, "exit code")

	data, err := os.ReadFile(found)
	testutil.AssertNoError(t, err, "read found")
	testutil.AssertEqual(t, strings.TrimSpace(string(data)), "advania.test", "found domains")

	raw, err := os.ReadFile(report)
	testutil.AssertNoError(t, err, "read report")

	var rep domain.Report
	testutil.AssertNoError(t, json.Unmarshal(raw, &rep), "decode report")
	testutil.AssertEqual(t, rep.Mode, domain.RunModeSearch, "mode")
	testutil.AssertEqual(t, rep.Base, "advania", "base")
	testutil.AssertEqual(t, rep.Candidates, 3, "candidates")
	testutil.AssertEqual(t, rep.Metadata.Resolver, resolver, "resolver recorded")
	testutil.AssertEqual(t, rep.Metadata.Environment["commit"], commit, "commit recorded")
	testutil.AssertNotNil(t, rep.Resolve, "resolve stage")
	testutil.AssertLen(t, rep.Resolve.Succeeded, 1, "succeeded")
	testutil.AssertLen(t, rep.Resolve.Failed, 2, "failed")
	testutil.AssertNil(t, rep.HTTPS, "no https stage")
}

func TestRun_EmptyInputFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "empty.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("\n  \n"), 0o644), "write input")

	testutil.AssertEqual(t, run([]string{"-q", "-c", "-i", path}), exitOK, "empty input is not an error")
}

func TestNewDispatchers_ResolveHasNoDeadline(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Workers = 7
	cfg.TimeoutS = 2

	resolving, checking := newDispatchers(cfg, logx.NewSilent())

	testutil.AssertEqual(t, resolving.Timeout(), time.Duration(0), "resolve stage has no task deadline")
	testutil.AssertEqual(t, checking.Timeout(), 2*time.Second, "https stage uses --timeout")
	testutil.AssertEqual(t, resolving.Workers(), 7, "resolve workers")
	testutil.AssertEqual(t, checking.Workers(), 7, "https workers")
}

func TestBuildProbe(t *testing.T) {
	cfg := ports.ProbeConfig{Timeout: time.Second}

	p, err := buildProbe(domain.StageHTTPS, cfg, logx.NewSilent())
	testutil.AssertNoError(t, err, "https probe")
	testutil.AssertEqual(t, p.Name(), "port", "https probe name")

	_, err = buildProbe(domain.Stage("archive"), cfg, logx.NewSilent())
	testutil.AssertErrorIs(t, err, errors.ErrInvalidInput, "unknown stage")
	testutil.AssertContains(t, err.Error(), "no probe registered for stage archive", "stage named in error")
}

func TestBuildRequest_SkipsInvalidTLDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tlds.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte(".com\n.co.uk\n.is\n"), 0o644), "write tlds")

	cfg := config.DefaultConfig()
	cfg.Base = "advania"
	cfg.TLDFile = path

	var buf bytes.Buffer
	logger := logx.NewWithWriter(&buf, logx.LevelWarn)

	req, err := buildRequest(context.Background(), cfg, tld.New(path, "", nil, logger), output.NewListStore(), logger)
	testutil.AssertNoError(t, err, "one bad line does not stop the search")
	testutil.AssertLen(t, domain.Strings(req.Candidates), 2, "valid tlds expanded")
	testutil.AssertContains(t, buf.String(), "skipping invalid tld", "warning logged")
	testutil.AssertContains(t, buf.String(), "tld=.co.uk", "bad tld named")
}

func TestBuildRequest_WarnsOnUnlistedSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("advania.com\nadvania.notarealtld\n"), 0o644), "write input")

	cfg := config.DefaultConfig()
	cfg.InputFile = path
	cfg.CheckSite = true

	var buf bytes.Buffer
	logger := logx.NewWithWriter(&buf, logx.LevelWarn)

	req, err := buildRequest(context.Background(), cfg, nil, output.NewListStore(), logger)
	testutil.AssertNoError(t, err, "input request")
	testutil.AssertLen(t, domain.Strings(req.Candidates), 2, "every line is still probed")
	testutil.AssertContains(t, buf.String(), "domain=advania.notarealtld", "unlisted suffix reported")
	testutil.AssertFalse(t, strings.Contains(buf.String(), "domain=advania.com"), "listed suffix not reported")
}
