// cmd/domainsearch/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"domainsearch/internal/adapters/output"
	"domainsearch/internal/adapters/tld"
	"domainsearch/internal/core/domain"
	"domainsearch/internal/core/ports"
	"domainsearch/internal/core/usecases"
	"domainsearch/internal/platform/config"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/httpclient"
	"domainsearch/internal/platform/logx"
	"domainsearch/internal/platform/metrics"
	"domainsearch/internal/platform/registry"
	"domainsearch/internal/platform/ui"
	"domainsearch/internal/platform/workerpool"

	// Registro de probes via init()
	_ "domainsearch/internal/probe"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK       = 0
	exitRuntime  = 1
	exitConfig   = 2
	exitCanceled = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 1. Config: defaults -> file -> env -> flags
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: domainsearch -h for help")
		return exitConfig
	}

	if cfg.PrintHelp {
		config.PrintHelp(os.Stdout)
		return exitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(os.Stdout, version, commit, date)
		return exitOK
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: domainsearch <base> [options]")
		return exitConfig
	}

	// 2. Logger compartido
	logger := logx.NewWithLevel(cfg.Level())
	logger.Debug("domainsearch starting",
		"version", version,
		"commit", commit,
		"config", cfg.String(),
	)

	// 3. Contexto y señales
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	client := httpclient.New(httpclient.DefaultConfig(), logger)
	tlds := tld.New(cfg.TLDFile, cfg.TLDURL, client, logger)

	// 4. --update: refrescar la lista y salir
	if cfg.Update {
		list, err := tlds.Refresh(ctx)
		if err != nil {
			logger.Err(err, "phase", "tld-update")
			return exitRuntime
		}
		fmt.Fprintf(os.Stdout, "Saved %d TLDs to %s\n", len(list), tlds.Path())
		return exitOK
	}

	// 5. Candidatos
	lists := output.NewListStore()
	req, err := buildRequest(ctx, cfg, tlds, lists, logger)
	if err != nil {
		logger.Err(err, "phase", "input")
		return exitConfig
	}

	// 6. Probes desde el registry
	service, presenter, recorder, err := buildService(cfg, logger)
	if err != nil {
		logger.Err(err, "phase", "probe-build")
		return exitConfig
	}
	defer presenter.Close()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := recorder.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.Warn("metrics endpoint stopped", "addr", cfg.MetricsAddr, "error", err.Error())
			}
		}()
	}

	// 7. Ejecutar
	report, runErr := service.Run(ctx, req)
	if runErr != nil && !errors.Is(runErr, domain.ErrRunCanceled) {
		logger.Err(runErr, "phase", "run")
		return exitConfig
	}

	if report != nil {
		report.Metadata.Environment["commit"] = commit
		report.Metadata.Environment["date"] = date

		if err := writeOutputs(cfg, report, lists, presenter); err != nil {
			logger.Err(err, "phase", "output")
			return exitRuntime
		}
	}

	if runErr != nil {
		logger.Warn("run interrupted", "error", runErr.Error())
		return exitCanceled
	}

	return exitOK
}

// buildRequest arma la petición según el modo: expansión base+TLDs o archivo.
// Las entradas dudosas se avisan por log pero no detienen la ejecución.
func buildRequest(ctx context.Context, cfg config.Config, tlds ports.TLDSource, lists ports.DomainListStore, logger logx.Logger) (usecases.RunRequest, error) {
	req := usecases.RunRequest{
		Mode:      cfg.Mode(),
		Base:      cfg.Base,
		CheckSite: cfg.CheckSite,
	}

	if req.Mode == domain.RunModeInput {
		lines, err := lists.Load(cfg.InputFile)
		if err != nil {
			return req, err
		}
		req.Candidates = domain.ParseCandidates(lines)

		for _, c := range domain.WithoutPublicSuffix(req.Candidates) {
			logger.Warn("domain has no public suffix", "domain", c, "file", cfg.InputFile)
		}
		return req, nil
	}

	list, err := tlds.TLDs(ctx)
	if err != nil {
		return req, fmt.Errorf("tld list: %w", err)
	}

	candidates, skipped, err := domain.Expand(cfg.Base, list)
	for _, tld := range skipped {
		logger.Warn("skipping invalid tld", "tld", tld, "file", cfg.TLDFile)
	}
	if err != nil {
		return req, err
	}
	req.Candidates = candidates
	return req, nil
}

// buildService construye probes, dispatchers y observers.
func buildService(cfg config.Config, logger logx.Logger) (*usecases.SearchService, ui.Presenter, *metrics.Recorder, error) {
	probeCfg := ports.ProbeConfig{
		Timeout:  cfg.Timeout(),
		Resolver: cfg.Resolver,
	}

	var resolver, checker ports.Prober
	var err error

	if cfg.Mode() == domain.RunModeSearch {
		if resolver, err = buildProbe(domain.StageResolve, probeCfg, logger); err != nil {
			return nil, nil, nil, err
		}
	}

	if cfg.CheckSite {
		if checker, err = buildProbe(domain.StageHTTPS, probeCfg, logger); err != nil {
			return nil, nil, nil, err
		}
	}

	resolving, checking := newDispatchers(cfg, logger)

	presenter := ui.New(ui.Format(cfg.Format), cfg.Quiet)
	recorder := metrics.NewRecorder()

	service := usecases.NewSearchService(usecases.SearchOptions{
		Dispatcher:        checking,
		ResolveDispatcher: resolving,
		Resolver:          resolver,
		Checker:           checker,
		Observers:         []ports.Notifier{ui.NewNotifier(presenter), recorder},
		Logger:            logger,
		ResolverName:      cfg.ResolverName(),
		Version:           version,
	})

	return service, presenter, recorder, nil
}

// buildProbe construye el probe registrado para stage.
func buildProbe(stage domain.Stage, cfg ports.ProbeConfig, logger logx.Logger) (ports.Prober, error) {
	name, ok := registry.Global().ForStage(stage)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "no probe registered for stage %s", stage)
	}
	return registry.Global().Build(name, cfg, logger)
}

// newDispatchers retorna el pool del stage resolve y el del stage https.
// Ambos comparten el límite de workers; solo las conexiones al 443 llevan
// el deadline de --timeout (la resolución depende del resolver: el cliente
// DNS directo aplica su propio timeout).
func newDispatchers(cfg config.Config, logger logx.Logger) (resolving, checking *workerpool.Dispatcher) {
	resolving = workerpool.New(workerpool.Config{
		Workers: cfg.Workers,
		Logger:  logger,
	})
	checking = workerpool.New(workerpool.Config{
		Workers: cfg.Workers,
		Timeout: cfg.Timeout(),
		Logger:  logger,
	})
	return resolving, checking
}

// writeOutputs escribe la lista de dominios encontrados y el reporte.
func writeOutputs(cfg config.Config, report *domain.Report, lists ports.DomainListStore, presenter ui.Presenter) error {
	if cfg.OutputFile != "" {
		found := report.Found()
		if report.Mode == domain.RunModeInput {
			found = report.Alive()
		}
		if err := lists.Save(cfg.OutputFile, found); err != nil {
			return fmt.Errorf("domain list: %w", err)
		}
		presenter.Info(fmt.Sprintf("Saved %d domains to %s", len(found), cfg.OutputFile))
	}

	if cfg.JSONReport != "" {
		path, err := output.WriteReport(cfg.JSONReport, report)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if path != "-" {
			presenter.Info(fmt.Sprintf("Report written to %s", path))
		}
	}

	return nil
}

// rootContextWithSignals crea el contexto raíz cancelado por SIGINT/SIGTERM.
// La función de cancelación libera el handler de señales.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanup
}
