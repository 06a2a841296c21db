// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"domainsearch/internal/core/domain"
)

// TableExporter imprime un resumen legible en texto plano.
type TableExporter struct{}

// Name implementa ports.Exporter.
func (TableExporter) Name() string {
	return "table"
}

// Export implementa ports.Exporter.
func (TableExporter) Export(report *domain.Report, w io.Writer) error {
	return OutputTable(report, w)
}

// OutputTable imprime el reporte como tabla.
func OutputTable(report *domain.Report, out io.Writer) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== domainsearch results ===\n")
	fmt.Fprintf(w, "Run:\t%s\n", report.ID)
	fmt.Fprintf(w, "Mode:\t%s\n", report.Mode)
	if report.Base != "" {
		fmt.Fprintf(w, "Base:\t%s\n", report.Base)
	}
	fmt.Fprintf(w, "Candidates:\t%d\n", report.Candidates)
	fmt.Fprintf(w, "Duration:\t%s\n\n", report.Metadata.Duration)

	stages := []*domain.StageReport{report.Resolve, report.HTTPS}
	fmt.Fprintln(w, "STAGE\tPROBE\tTOTAL\tSUCCEEDED\tFAILED\tDURATION")
	fmt.Fprintln(w, "-----\t-----\t-----\t---------\t------\t--------")
	for _, s := range stages {
		if s == nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			s.Stage,
			s.Probe,
			s.Total,
			len(s.Succeeded),
			len(s.Failed),
			s.Duration,
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	for _, s := range stages {
		if s == nil || len(s.Succeeded) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s (%d):\n", s.Stage, len(s.Succeeded))
		for _, d := range s.Succeeded {
			fmt.Fprintf(out, "  - %s\n", d)
		}
	}

	fmt.Fprintln(out)
	return nil
}
