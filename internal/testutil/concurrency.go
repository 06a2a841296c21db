package testutil

import (
	"sync"
	"sync/atomic"
)

// ConcurrencyTracker registra cuántas llamadas están en vuelo y el máximo observado.
// Se usa desde probes instrumentados para verificar límites de concurrencia.
type ConcurrencyTracker struct {
	inFlight atomic.Int64
	calls    atomic.Int64

	mu        sync.Mutex
	highWater int64
}

// Enter marca el inicio de una llamada. Devuelve la función que la cierra.
func (c *ConcurrencyTracker) Enter() func() {
	n := c.inFlight.Add(1)
	c.calls.Add(1)

	c.mu.Lock()
	if n > c.highWater {
		c.highWater = n
	}
	c.mu.Unlock()

	return func() { c.inFlight.Add(-1) }
}

// HighWater devuelve el máximo de llamadas simultáneas observado.
func (c *ConcurrencyTracker) HighWater() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.highWater)
}

// Calls devuelve el número total de llamadas.
func (c *ConcurrencyTracker) Calls() int {
	return int(c.calls.Load())
}

// InFlight devuelve las llamadas activas en este instante.
func (c *ConcurrencyTracker) InFlight() int {
	return int(c.inFlight.Load())
}
