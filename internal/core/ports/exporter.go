// internal/core/ports/exporter.go
package ports

import (
	"io"

	"domainsearch/internal/core/domain"
)

// Exporter es el port para exportar el reporte final.
type Exporter interface {
	// Name retorna el nombre del exporter (ej: "json", "table")
	Name() string

	// Export escribe el reporte en w
	Export(report *domain.Report, w io.Writer) error
}
