// internal/core/usecases/search_service.go
package usecases

import (
	"context"
	"time"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
)

// Dispatcher reparte un probe sobre muchos candidatos con concurrencia acotada.
// Lo implementa workerpool.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, inputs []domain.Candidate, prober ports.Prober) <-chan domain.ProbeResult
	Workers() int
	Timeout() time.Duration
}

// SearchService encadena los stages: resolución DNS y, opcionalmente,
// conexión al puerto 443 sobre los dominios que resolvieron.
type SearchService struct {
	dispatcher Dispatcher
	resolving  Dispatcher
	resolver   ports.Prober
	checker    ports.Prober
	collector  *Collector
	logger     logx.Logger

	resolverName string
	version      string
}

// SearchOptions configura el servicio.
type SearchOptions struct {
	// Dispatcher ejecuta el stage https; su Timeout acota cada conexión
	Dispatcher Dispatcher

	// ResolveDispatcher ejecuta el stage resolve (nil = Dispatcher). La
	// resolución no lleva deadline propio: solo el que imponga el resolver.
	ResolveDispatcher Dispatcher

	// Resolver probe del stage resolve (requerido en modo search)
	Resolver ports.Prober

	// Checker probe del stage https (requerido si se pide CheckSite)
	Checker ports.Prober

	Observers []ports.Notifier
	Logger    logx.Logger

	// ResolverName backend DNS usado, para el reporte ("system" o host:port)
	ResolverName string

	Version string
}

// RunRequest describe una ejecución.
type RunRequest struct {
	Mode       domain.RunMode
	Base       string
	Candidates []domain.Candidate
	CheckSite  bool
}

// NewSearchService crea el servicio.
func NewSearchService(opts SearchOptions) *SearchService {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.ResolverName == "" {
		opts.ResolverName = "system"
	}

	if opts.ResolveDispatcher == nil {
		opts.ResolveDispatcher = opts.Dispatcher
	}

	return &SearchService{
		dispatcher:   opts.Dispatcher,
		resolving:    opts.ResolveDispatcher,
		resolver:     opts.Resolver,
		checker:      opts.Checker,
		collector:    NewCollector(opts.Observers, opts.Logger),
		logger:       opts.Logger.With("component", "search"),
		resolverName: opts.ResolverName,
		version:      opts.Version,
	}
}

// Validate comprueba la petición antes de despachar nada.
func (s *SearchService) Validate(req RunRequest) error {
	if s.dispatcher == nil {
		return errors.Wrap(errors.ErrInvalidInput, "dispatcher is required")
	}
	if !req.Mode.IsValid() {
		return domain.ErrInvalidRunMode
	}
	if s.dispatcher.Workers() <= 0 {
		return errors.Wrap(errors.ErrInvalidInput, "workers must be positive")
	}

	switch req.Mode {
	case domain.RunModeSearch:
		if req.Base == "" {
			return domain.ErrEmptyBase
		}
		if len(req.Candidates) == 0 {
			return domain.ErrNoCandidates
		}
		if s.resolver == nil {
			return errors.Wrap(errors.ErrInvalidInput, "resolver probe is required")
		}
	case domain.RunModeInput:
		if !req.CheckSite {
			return errors.Wrap(errors.ErrMissingInput, "input mode only runs the https stage")
		}
	}

	if req.CheckSite && s.checker == nil {
		return errors.Wrap(errors.ErrInvalidInput, "port probe is required for the https stage")
	}

	return nil
}

// Resolve ejecuta el stage DNS sobre candidates.
func (s *SearchService) Resolve(ctx context.Context, candidates []domain.Candidate) *domain.StageReport {
	return s.runStage(ctx, domain.StageResolve, s.resolving, s.resolver, candidates)
}

// CheckHTTPS ejecuta el stage de puerto 443 sobre candidates.
func (s *SearchService) CheckHTTPS(ctx context.Context, candidates []domain.Candidate) *domain.StageReport {
	return s.runStage(ctx, domain.StageHTTPS, s.dispatcher, s.checker, candidates)
}

// Run ejecuta la petición completa y retorna el reporte.
//
// Si ctx se cancela a mitad, el reporte sigue siendo completo (los candidatos
// no ejecutados aparecen como fallidos) y se retorna junto a ErrRunCanceled.
func (s *SearchService) Run(ctx context.Context, req RunRequest) (*domain.Report, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	report := domain.NewReport(req.Mode, req.Base)
	report.Candidates = len(req.Candidates)
	report.Metadata.Workers = s.dispatcher.Workers()
	report.Metadata.Timeout = s.dispatcher.Timeout()
	report.Metadata.Resolver = s.resolverName
	report.Metadata.Version = s.version

	s.logger.Info("starting run",
		"run_id", report.ID,
		"mode", req.Mode,
		"base", req.Base,
		"candidates", len(req.Candidates),
		"workers", s.dispatcher.Workers(),
		"check_site", req.CheckSite,
	)

	s.collector.Notify(ctx, ports.NewEvent(
		ports.EventTypeRunStarted,
		"",
		ports.RunStartedEvent{
			RunID:      report.ID,
			Mode:       req.Mode,
			Base:       req.Base,
			Candidates: len(req.Candidates),
			Workers:    s.dispatcher.Workers(),
			Timeout:    s.dispatcher.Timeout(),
			CheckSite:  req.CheckSite,
		},
	))

	targets := req.Candidates
	if req.Mode == domain.RunModeSearch {
		report.Resolve = s.Resolve(ctx, req.Candidates)
		targets = toCandidates(report.Resolve.Succeeded)
	}

	if req.CheckSite {
		report.HTTPS = s.CheckHTTPS(ctx, targets)
	}

	report.Finalize()

	s.logger.Info("run completed",
		"run_id", report.ID,
		"found", len(report.Found()),
		"alive", len(report.Alive()),
		"duration_ms", report.Metadata.Duration.Milliseconds(),
	)

	s.collector.Notify(ctx, ports.NewEvent(
		ports.EventTypeRunCompleted,
		"",
		ports.RunCompletedEvent{Report: report},
	))

	if ctx.Err() != nil {
		return report, errors.Join(domain.ErrRunCanceled, ctx.Err())
	}
	return report, nil
}

func (s *SearchService) runStage(ctx context.Context, stage domain.Stage, dispatcher Dispatcher, prober ports.Prober, candidates []domain.Candidate) *domain.StageReport {
	start := time.Now()

	s.logger.Debug("stage started", "stage", stage, "probe", prober.Name(), "candidates", len(candidates))
	s.collector.Notify(ctx, ports.NewEvent(
		ports.EventTypeStageStarted,
		stage,
		ports.StageStartedEvent{
			Probe:   prober.Name(),
			Total:   len(candidates),
			Workers: dispatcher.Workers(),
			Timeout: dispatcher.Timeout(),
		},
	))

	results := dispatcher.Dispatch(ctx, candidates, prober)
	partition := s.collector.Collect(ctx, stage, results)
	elapsed := time.Since(start)

	s.collector.Notify(ctx, ports.NewEvent(
		ports.EventTypeStageCompleted,
		stage,
		ports.StageCompletedEvent{
			Probe:     prober.Name(),
			Succeeded: partition.SucceededCount(),
			Failed:    partition.FailedCount(),
			Duration:  elapsed,
		},
	))

	return domain.NewStageReport(stage, prober.Name(), partition, elapsed)
}

func toCandidates(names []string) []domain.Candidate {
	out := make([]domain.Candidate, len(names))
	for i, n := range names {
		out[i] = domain.Candidate(n)
	}
	return out
}
