// internal/core/usecases/collector.go
package usecases

import (
	"context"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/logx"
)

// Collector es el único consumidor del stream de resultados de un stage.
// Notifica cada resultado a los observers y construye la partición.
// La partición solo la escribe Collect, por eso no lleva locks.
type Collector struct {
	observers []ports.Notifier
	logger    logx.Logger
}

// NewCollector crea un collector con los observers dados.
func NewCollector(observers []ports.Notifier, logger logx.Logger) *Collector {
	if logger == nil {
		logger = logx.New()
	}
	return &Collector{
		observers: observers,
		logger:    logger.With("component", "collector"),
	}
}

// Collect drena results hasta que se cierra y retorna la partición.
// Para cada resultado primero notifica y después lo agrega al set que toca.
func (c *Collector) Collect(ctx context.Context, stage domain.Stage, results <-chan domain.ProbeResult) *domain.Partition {
	partition := domain.NewPartition()

	for r := range results {
		c.Notify(ctx, ports.NewProbeEvent(stage, r))
		partition.Add(r)
	}

	c.logger.Debug("stage collected",
		"stage", stage,
		"succeeded", partition.SucceededCount(),
		"failed", partition.FailedCount(),
	)

	return partition
}

// Notify entrega event a todos los observers, en orden y de forma síncrona.
// Un observer que falla no bloquea al resto.
func (c *Collector) Notify(ctx context.Context, event ports.Event) {
	for _, observer := range c.observers {
		if err := observer.Notify(ctx, event); err != nil {
			c.logger.Warn("notification failed",
				"event_type", event.Type,
				"error", err.Error(),
			)
		}
	}
}
