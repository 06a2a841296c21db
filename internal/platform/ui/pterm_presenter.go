// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"domainsearch/internal/core/domain"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm.
// Imprime cada resultado en cuanto llega, coloreado según el outcome.
type PTermPresenter struct {
	mu  sync.Mutex
	out io.Writer

	info      RunInfo
	startTime time.Time
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm.
// Con out nil escribe en stdout.
func NewPTermPresenter(out io.Writer) *PTermPresenter {
	if out == nil {
		out = os.Stdout
	}
	return &PTermPresenter{out: out}
}

func (p *PTermPresenter) println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Start muestra el header de la ejecución
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.startTime = time.Now()

	p.println(pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprint("domainsearch"))

	switch info.Mode {
	case domain.RunModeSearch:
		p.println(fmt.Sprintf("%s Searching domains for base '%s' with %d workers...",
			IconTarget, StyleAccent.Sprint(info.Base), info.Workers))
	case domain.RunModeInput:
		p.println(fmt.Sprintf("%s Loaded %d domains from input", IconTarget, info.Candidates))
	}
	p.println(StyleSecondary.Sprintf("   candidates: %d  timeout: %s  check-site: ", info.Candidates, info.Timeout) +
		onOff(info.CheckSite))
}

// StartStage muestra el inicio de un stage
func (p *PTermPresenter) StartStage(stage StageInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if stage.Stage == domain.StageHTTPS {
		p.println()
		p.println(fmt.Sprintf("Checking HTTPS (port 443) on %d domains (timeout %s)...",
			stage.Total, stage.Timeout))
	}
}

// Result imprime el resultado de un probe.
// En el stage resolve solo se muestran los dominios encontrados.
func (p *PTermPresenter) Result(stage domain.Stage, result domain.ProbeResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if m := MarkFor(stage, result.Outcome); m != MarkHidden {
		p.println(m.Render(result.Candidate))
	}
}

// FinishStage muestra el resumen de un stage
func (p *PTermPresenter) FinishStage(stats StageStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if stats.Stage == domain.StageResolve {
		p.println()
		p.println(StyleSecondary.Sprintf("%s %d of %d domains resolved in %s",
			IconTime, stats.Succeeded, stats.Succeeded+stats.Failed, formatDuration(stats.Duration)))
	}
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.println(pterm.Info.Sprint(msg))
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.println(pterm.Warning.Sprint(msg))
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.println(pterm.Error.Sprint(msg))
}

// Finish muestra el resumen final
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if stats.HTTPS != nil {
		p.println()
		p.println(fmt.Sprintf("%d domains responded on port 443.", stats.HTTPS.Succeeded))
	}

	data := pterm.TableData{{"Stage", "Probe", "Succeeded", "Failed", "Duration"}}
	for _, s := range []*StageStats{stats.Resolve, stats.HTTPS} {
		if s == nil {
			continue
		}
		data = append(data, []string{
			string(s.Stage),
			s.Probe,
			fmt.Sprint(s.Succeeded),
			fmt.Sprint(s.Failed),
			formatDuration(s.Duration),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err == nil {
		p.println()
		p.println(table)
	}
	p.println(StyleSecondary.Sprintf("%s Run %s finished in %s", IconStats, stats.RunID, formatDuration(stats.Duration)))
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	return nil
}
