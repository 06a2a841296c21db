// internal/platform/registry/probe_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/logx"
)

// ProbeRegistry gestiona el registro y construcción de probes.
// Implementa el patrón Registry + Factory: cada package de probe se registra
// en init() y la aplicación los construye por nombre.
type ProbeRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProbeFactory
	metadata  map[string]ports.ProbeMetadata
	logger    logx.Logger
}

// ProbeFactory es una función que crea una instancia de Prober.
type ProbeFactory func(cfg ports.ProbeConfig, logger logx.Logger) (ports.Prober, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ProbeRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ProbeRegistry {
	once.Do(func() {
		globalRegistry = NewProbeRegistry(logx.NewSilent())
	})
	return globalRegistry
}

// NewProbeRegistry crea un nuevo registry de probes.
func NewProbeRegistry(logger logx.Logger) *ProbeRegistry {
	return &ProbeRegistry{
		factories: make(map[string]ProbeFactory),
		metadata:  make(map[string]ports.ProbeMetadata),
		logger:    logger.With("component", "probe-registry"),
	}
}

// Register registra una factory con su metadata.
// Típicamente llamado desde init() de cada probe.
func (r *ProbeRegistry) Register(name string, factory ProbeFactory, meta ports.ProbeMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("probe name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for probe %s", name)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("probe %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("probe registered", "name", name, "stage", meta.Stage)

	return nil
}

// Build construye el probe registrado como name.
func (r *ProbeRegistry) Build(name string, cfg ports.ProbeConfig, logger logx.Logger) (ports.Prober, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("probe %s not registered in registry", name)
	}

	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	prober, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build probe %s: %w", name, err)
	}

	r.logger.Debug("probe built", "name", name, "timeout", cfg.Timeout, "resolver", cfg.Resolver)
	return prober, nil
}

// ForStage retorna el nombre del probe registrado para stage.
func (r *ProbeRegistry) ForStage(stage domain.Stage) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.sortedNames() {
		if r.metadata[name].Stage == stage {
			return name, true
		}
	}
	return "", false
}

// List retorna los nombres de todos los probes registrados.
func (r *ProbeRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

func (r *ProbeRegistry) sortedNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de un probe.
func (r *ProbeRegistry) GetMetadata(name string) (ports.ProbeMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered verifica si un probe está registrado.
func (r *ProbeRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los probes registrados (útil para testing).
func (r *ProbeRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ProbeFactory)
	r.metadata = make(map[string]ports.ProbeMetadata)
}
