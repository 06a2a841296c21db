// internal/core/domain/partition.go
package domain

import "sort"

// Partition separa los candidatos de un stage en exitosos y fallidos.
// No es segura para uso concurrente: la escribe un solo consumidor.
type Partition struct {
	succeeded map[Candidate]struct{}
	failed    map[Candidate]struct{}
}

// NewPartition crea una partición vacía.
func NewPartition() *Partition {
	return &Partition{
		succeeded: make(map[Candidate]struct{}),
		failed:    make(map[Candidate]struct{}),
	}
}

// Add registra un resultado en el conjunto correspondiente.
// Un candidato nunca queda en ambos conjuntos: un éxito posterior lo mueve.
func (p *Partition) Add(r ProbeResult) {
	if r.Succeeded() {
		delete(p.failed, r.Candidate)
		p.succeeded[r.Candidate] = struct{}{}
		return
	}
	if _, ok := p.succeeded[r.Candidate]; ok {
		return
	}
	p.failed[r.Candidate] = struct{}{}
}

// Succeeded retorna los candidatos exitosos ordenados.
func (p *Partition) Succeeded() []Candidate {
	return sortedKeys(p.succeeded)
}

// Failed retorna los candidatos fallidos ordenados.
func (p *Partition) Failed() []Candidate {
	return sortedKeys(p.failed)
}

// HasSucceeded indica si c está en el conjunto exitoso.
func (p *Partition) HasSucceeded(c Candidate) bool {
	_, ok := p.succeeded[c]
	return ok
}

// HasFailed indica si c está en el conjunto fallido.
func (p *Partition) HasFailed(c Candidate) bool {
	_, ok := p.failed[c]
	return ok
}

// SucceededCount cardinalidad del conjunto exitoso.
func (p *Partition) SucceededCount() int {
	return len(p.succeeded)
}

// FailedCount cardinalidad del conjunto fallido.
func (p *Partition) FailedCount() int {
	return len(p.failed)
}

// Total número de candidatos distintos observados.
func (p *Partition) Total() int {
	return len(p.succeeded) + len(p.failed)
}

func sortedKeys(m map[Candidate]struct{}) []Candidate {
	out := make([]Candidate, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
