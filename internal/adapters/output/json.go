// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
)

var (
	_ ports.Exporter = JSONExporter{}
	_ ports.Exporter = TableExporter{}
)

// JSONExporter escribe el reporte completo en JSON.
type JSONExporter struct {
	Pretty bool
}

// Name implementa ports.Exporter.
func (e JSONExporter) Name() string {
	return "json"
}

// Export implementa ports.Exporter.
func (e JSONExporter) Export(report *domain.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	if e.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// sanitizeDomainName convierte un nombre en un componente de archivo válido.
// Ejemplo: "example.com" -> "example_com"
func sanitizeDomainName(name string) string {
	sanitized := strings.ReplaceAll(name, ".", "_")
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
	return sanitized
}

// ReportFilename genera el nombre por defecto del reporte:
// domainsearch_<base>_<timestamp>.json ("input" en lugar de base en modo input).
func ReportFilename(report *domain.Report) string {
	name := report.Base
	if name == "" {
		name = string(report.Mode)
	}
	ts := report.Metadata.StartTime
	if ts.IsZero() {
		ts = time.Now()
	}
	return fmt.Sprintf("domainsearch_%s_%s.json", sanitizeDomainName(name), ts.Format("20060102_150405"))
}

// ExporterFor elige el exporter según la extensión de path:
// ".txt" produce la tabla de texto, cualquier otra cosa JSON indentado.
func ExporterFor(path string) ports.Exporter {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return TableExporter{}
	}
	return JSONExporter{Pretty: true}
}

// WriteReport escribe el reporte en path y retorna la ruta final.
// "-" escribe JSON en stdout; si path es un directorio existente el archivo se
// crea dentro con ReportFilename.
func WriteReport(path string, report *domain.Report) (string, error) {
	if path == "-" {
		return path, JSONExporter{Pretty: true}.Export(report, os.Stdout)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ReportFilename(report))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := ExporterFor(path).Export(report, f); err != nil {
		return "", err
	}
	return path, nil
}
