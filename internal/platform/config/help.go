// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
domainsearch - find registered domains for a base name across every TLD

USAGE:
  domainsearch <base> [options]
  domainsearch -i <file> -c [options]
  domainsearch -u

IMPORTANT:
  Use double dash (--) for long flag names: --workers, --check-site
  Use single dash (-) for short flags: -w, -c

SEARCH OPTIONS:
  <base>                   Base label to combine with every TLD (e.g. advania)
  -w, --workers int        Number of concurrent probes (default: 20)
  -T, --timeout int        Timeout in seconds for each probe (default: 3)
  --resolver string        DNS server host:port, e.g. 1.1.1.1:53 (default: system resolver)
  -c, --check-site         Check if port 443 (HTTPS) is responding

INPUT / OUTPUT:
  -i, --input string       Load domains from a file (one per line) instead of searching
  -o, --output string      Save found domains to a file
  --json string            Write a JSON report to this path or directory ("-" = stdout)

TLD LIST:
  -u, --update             Download the IANA TLD list and exit
  --tlds string            Path of the local TLD list (default: "tlds.txt")
  --tld-url string         URL of the IANA TLD list

TERMINAL:
  --format string          pretty, text or json (default: "pretty")
  -q, --quiet              No terminal output besides errors
  -v, --verbose            Debug logging on stderr (default level: warn)

OBSERVABILITY:
  --metrics-addr string    Serve Prometheus metrics on this address (e.g. :9090)

CONFIG:
  --config string          YAML config file (keys: workers, timeout, resolver,
                           check_site, tlds, tld_url, format, metrics_addr, ...)

INFO:
  --version                Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Search a base name:
    domainsearch advania

  Search and check HTTPS, saving the hits:
    domainsearch advania -c -o found.txt

  Use a specific DNS server and more workers:
    domainsearch advania --resolver 1.1.1.1:53 -w 50

  Check HTTPS on a list of domains:
    domainsearch -i found.txt -c

  Refresh the TLD list:
    domainsearch -u

ENVIRONMENT VARIABLES:
  DOMAINSEARCH_WORKERS=50            Number of concurrent probes
  DOMAINSEARCH_TIMEOUT=5             Timeout in seconds
  DOMAINSEARCH_CHECK_SITE=true       Check port 443
  DOMAINSEARCH_RESOLVER=1.1.1.1:53   DNS server
  DOMAINSEARCH_TLDS=/path/tlds.txt   TLD list path
  DOMAINSEARCH_TLD_URL=https://...   TLD list URL
  DOMAINSEARCH_FORMAT=text           Terminal format
  DOMAINSEARCH_METRICS_ADDR=:9090    Metrics endpoint
  DOMAINSEARCH_LOG_LEVEL=debug       Log level
  DOMAINSEARCH_CONFIG=/path/cfg.yaml Config file

  Precedence: defaults < config file < environment < CLI flags.

EXIT CODES:
  0    run completed
  1    runtime error (TLD download, writing output)
  2    invalid configuration
  130  interrupted
`

// PrintHelp escribe el mensaje de ayuda.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion escribe la información de versión.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "domainsearch %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
