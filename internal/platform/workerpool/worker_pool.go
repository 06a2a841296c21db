// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
)

// DefaultWorkers es el tamaño del pool cuando Config.Workers no es positivo.
const DefaultWorkers = 20

// Task representa una unidad de trabajo: un candidato y el timeout de su probe.
// Se crea una vez por input y nunca se reintenta.
type Task struct {
	Candidate domain.Candidate
	Timeout   time.Duration
}

// Config configura el dispatcher. Es de solo lectura durante una ejecución.
type Config struct {
	// Workers número fijo de goroutines (probes simultáneos como máximo)
	Workers int

	// Timeout deadline por task aplicado al contexto del probe (0 = sin deadline)
	Timeout time.Duration

	Logger logx.Logger
}

// Dispatcher ejecuta un probe sobre muchos candidatos con un pool de tamaño fijo
// y entrega cada resultado en cuanto termina.
type Dispatcher struct {
	workers int
	timeout time.Duration
	logger  logx.Logger
}

// New crea un nuevo dispatcher.
func New(cfg Config) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	return &Dispatcher{
		workers: cfg.Workers,
		timeout: cfg.Timeout,
		logger:  cfg.Logger.With("component", "dispatcher"),
	}
}

// Workers retorna el límite de concurrencia.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Timeout retorna el deadline por task.
func (d *Dispatcher) Timeout() time.Duration {
	return d.timeout
}

// Dispatch encola todos los inputs y los reparte entre los workers.
//
// El canal devuelto recibe exactamente len(inputs) resultados, en orden de
// finalización, y luego se cierra. Nunca se pierde un resultado: un probe que
// entra en pánico, o un task que no llega a ejecutarse porque ctx fue
// cancelado, produce un Failure para ese candidato.
//
// El canal tiene buffer para todos los resultados, así que un consumidor que
// abandona la lectura no bloquea a los workers.
func (d *Dispatcher) Dispatch(ctx context.Context, inputs []domain.Candidate, prober ports.Prober) <-chan domain.ProbeResult {
	results := make(chan domain.ProbeResult, len(inputs))
	if len(inputs) == 0 {
		close(results)
		return results
	}

	queue := make(chan Task, len(inputs))
	for _, c := range inputs {
		queue <- Task{Candidate: c, Timeout: d.timeout}
	}
	close(queue)

	workers := d.workers
	if len(inputs) < workers {
		workers = len(inputs)
	}

	d.logger.Debug("dispatching",
		"probe", prober.Name(),
		"tasks", len(inputs),
		"workers", workers,
		"timeout", d.timeout,
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go d.worker(ctx, i, prober, queue, results, &wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// worker es el goroutine que procesa tareas hasta vaciar la cola.
func (d *Dispatcher) worker(ctx context.Context, id int, prober ports.Prober, queue <-chan Task, results chan<- domain.ProbeResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range queue {
		results <- d.executeTask(ctx, id, prober, task)
	}
}

// executeTask ejecuta una tarea individual y garantiza un resultado válido.
func (d *Dispatcher) executeTask(ctx context.Context, workerID int, prober ports.Prober, task Task) (result domain.ProbeResult) {
	start := time.Now()
	name := prober.Name()

	if err := ctx.Err(); err != nil {
		return domain.NewFailure(task.Candidate, name, errors.Classify(err), 0)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("probe panicked",
				"worker_id", workerID,
				"probe", name,
				"candidate", task.Candidate,
				"panic", r,
			)
			result = domain.NewFailure(task.Candidate, name, errors.Wrapf(errors.ErrProbePanic, "%v", r), time.Since(start))
		}
	}()

	probeCtx := ctx
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	result = prober.Probe(probeCtx, task.Candidate)

	// El resultado debe quedar asociado a su candidato de origen.
	if result.Candidate != task.Candidate || !result.Outcome.IsValid() {
		d.logger.Warn("probe returned a malformed result",
			"probe", name,
			"candidate", task.Candidate,
			"got", result.Candidate,
			"outcome", result.Outcome,
		)
		result = domain.NewFailure(task.Candidate, name, errors.ErrInvalidResponse, time.Since(start))
	}
	if result.Probe == "" {
		result.Probe = name
	}
	if result.Duration == 0 {
		result.Duration = time.Since(start)
	}

	d.logger.Debug("task completed",
		"worker_id", workerID,
		"probe", name,
		"candidate", task.Candidate,
		"outcome", result.Outcome,
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result
}
