// internal/adapters/output/table_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/testutil"
)

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer

	if err := OutputTable(sampleReport(), &buf); err != nil {
		t.Fatalf("OutputTable() failed: %v", err)
	}

	out := buf.String()
	testutil.AssertContains(t, out, "=== domainsearch results ===", "header")
	testutil.AssertContains(t, out, "Base:", "base row")
	testutil.AssertContains(t, out, "STAGE", "table header")
	testutil.AssertContains(t, out, "resolve (2):", "resolved list")
	testutil.AssertContains(t, out, "  - advania.com", "domain line")
	testutil.AssertFalse(t, strings.Contains(out, "advania.zz"), "failed domains are not listed")
}

func TestOutputTable_InputMode(t *testing.T) {
	report := domain.NewReport(domain.RunModeInput, "")
	report.HTTPS = domain.NewStageReport(domain.StageHTTPS, "port", domain.NewPartition(), 0)

	var buf bytes.Buffer
	testutil.AssertNoError(t, TableExporter{}.Export(report, &buf), "export")

	out := buf.String()
	testutil.AssertFalse(t, strings.Contains(out, "Base:"), "no base in input mode")
	testutil.AssertContains(t, out, "https", "https row")
}
