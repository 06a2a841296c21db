// internal/adapters/output/list.go
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
)

var _ ports.DomainListStore = (*ListStore)(nil)

// ListStore lee y escribe listas de dominios, uno por línea.
type ListStore struct{}

// NewListStore crea el store.
func NewListStore() *ListStore {
	return &ListStore{}
}

// Load lee path omitiendo líneas vacías. Un archivo inexistente es ErrMissingInput.
func (s *ListStore) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrMissingInput, "input file '%s' does not exist", path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

// Save escribe domains en path, uno por línea, reemplazando el contenido.
func (s *ListStore) Save(path string, domains []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, d := range domains {
		fmt.Fprintln(w, d)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
