// internal/adapters/tld/tld.go
package tld

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/httpclient"
	"domainsearch/internal/platform/logx"
	"domainsearch/internal/platform/validator"
)

const (
	// DefaultURL lista oficial de TLDs publicada por IANA.
	DefaultURL = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"

	// DefaultPath archivo local con un TLD por línea (".com").
	DefaultPath = "tlds.txt"
)

var _ ports.TLDSource = (*Store)(nil)

// Store mantiene la lista local de TLDs y la refresca desde IANA.
type Store struct {
	path   string
	url    string
	client *httpclient.Client
	logger logx.Logger
}

// New crea el store. path y url vacíos usan los valores por defecto.
func New(path, url string, client *httpclient.Client, logger logx.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = logx.New()
	}
	if client == nil {
		client = httpclient.New(httpclient.DefaultConfig(), logger)
	}
	return &Store{
		path:   path,
		url:    url,
		client: client,
		logger: logger.With("component", "tld"),
	}
}

// Path retorna la ruta del archivo local.
func (s *Store) Path() string {
	return s.path
}

// TLDs retorna la lista local. Si el archivo no existe la descarga primero.
func (s *Store) TLDs(ctx context.Context) ([]string, error) {
	tlds, err := Load(s.path)
	if err == nil {
		s.logger.Debug("tld list loaded", "path", s.path, "count", len(tlds))
		return tlds, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	s.logger.Info("no tld list found, downloading fresh list", "path", s.path, "url", s.url)
	return s.Refresh(ctx)
}

// Refresh descarga la lista de IANA, la guarda en el archivo local y la retorna.
func (s *Store) Refresh(ctx context.Context) ([]string, error) {
	body, err := s.client.Fetch(ctx, s.url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch TLDs")
	}

	tlds, err := ParseIANA(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(tlds) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidResponse, "no TLDs in %s", s.url)
	}

	if err := Save(s.path, tlds); err != nil {
		return nil, err
	}

	s.logger.Info("tld list saved", "path", s.path, "count", len(tlds))
	return tlds, nil
}

// ParseIANA lee el formato de IANA: omite comentarios "#" y líneas vacías,
// pasa a minúsculas y antepone ".".
func ParseIANA(r io.Reader) ([]string, error) {
	var tlds []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		tld := "." + strings.ToLower(strings.TrimSpace(line))
		if !validator.IsTLD(tld) {
			return nil, errors.Wrapf(errors.ErrInvalidResponse, "invalid TLD line %q", line)
		}
		tlds = append(tlds, tld)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read TLD list")
	}

	return tlds, nil
}

// Load lee un archivo de TLDs (uno por línea, líneas vacías omitidas).
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tlds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			tlds = append(tlds, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return tlds, nil
}

// Save escribe la lista en path, un TLD por línea.
func Save(path string, tlds []string) error {
	content := strings.Join(tlds, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to save TLDs to %s: %w", path, err)
	}
	return nil
}
