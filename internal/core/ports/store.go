// internal/core/ports/store.go
package ports

import "context"

// TLDSource provee la lista de TLDs (".com", ".net", ...) usada para expandir
// el label base.
type TLDSource interface {
	// TLDs retorna la lista local, descargándola si aún no existe
	TLDs(ctx context.Context) ([]string, error)

	// Refresh descarga la lista desde el registro remoto y la persiste
	Refresh(ctx context.Context) ([]string, error)
}

// DomainListStore persiste listas de dominios (uno por línea).
type DomainListStore interface {
	// Load lee la lista desde path
	Load(path string) ([]string, error)

	// Save escribe la lista en path
	Save(path string, domains []string) error
}
