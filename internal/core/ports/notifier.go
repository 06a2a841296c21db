// internal/core/ports/notifier.go
package ports

import (
	"context"
	"time"

	"domainsearch/internal/core/domain"
)

// Notifier es el port para notificaciones de eventos del sistema.
// Implementa el patrón Observer para desacoplar el collector de los
// mecanismos de salida (terminal, métricas, etc.).
//
// Los eventos se entregan desde un solo goroutine (el collector), en orden.
type Notifier interface {
	// Notify envía una notificación para un evento
	Notify(ctx context.Context, event Event) error

	// Close cierra el notifier y libera recursos
	Close() error
}

// Event representa un evento del sistema.
type Event struct {
	// Type tipo de evento
	Type EventType

	// Timestamp momento del evento
	Timestamp time.Time

	// Stage stage relacionado (vacío para eventos de run)
	Stage domain.Stage

	// Data datos específicos del evento
	Data interface{}
}

// EventType define los tipos de eventos del sistema.
type EventType string

const (
	// Run events
	EventTypeRunStarted   EventType = "run.started"
	EventTypeRunCompleted EventType = "run.completed"

	// Stage events
	EventTypeStageStarted   EventType = "stage.started"
	EventTypeStageCompleted EventType = "stage.completed"

	// Probe events
	EventTypeProbeSucceeded EventType = "probe.succeeded"
	EventTypeProbeFailed    EventType = "probe.failed"
)

// NewEvent crea un nuevo evento.
func NewEvent(eventType EventType, stage domain.Stage, data interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Stage:     stage,
		Data:      data,
	}
}

// NewProbeEvent crea el evento correspondiente al outcome del resultado.
func NewProbeEvent(stage domain.Stage, r domain.ProbeResult) Event {
	eventType := EventTypeProbeFailed
	if r.Succeeded() {
		eventType = EventTypeProbeSucceeded
	}
	return NewEvent(eventType, stage, ProbeResultEvent{Result: r})
}

// RunStartedEvent datos para el evento de inicio de ejecución.
type RunStartedEvent struct {
	RunID      string
	Mode       domain.RunMode
	Base       string
	Candidates int
	Workers    int
	Timeout    time.Duration
	CheckSite  bool
}

// RunCompletedEvent datos para el evento de fin de ejecución.
type RunCompletedEvent struct {
	Report *domain.Report
}

// StageStartedEvent datos para el inicio de un stage.
type StageStartedEvent struct {
	Probe   string
	Total   int
	Workers int
	Timeout time.Duration
}

// StageCompletedEvent datos para el fin de un stage.
type StageCompletedEvent struct {
	Probe     string
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// ProbeResultEvent datos de un resultado individual.
type ProbeResultEvent struct {
	Result domain.ProbeResult
}
