// internal/platform/ui/notifier.go
package ui

import (
	"context"

	"domainsearch/internal/core/ports"
)

// Notifier adapta un Presenter a ports.Notifier para que el collector
// pueda alimentarlo con eventos.
type Notifier struct {
	presenter Presenter
}

// NewNotifier envuelve presenter.
func NewNotifier(presenter Presenter) *Notifier {
	return &Notifier{presenter: presenter}
}

// Notify implementa ports.Notifier.
func (n *Notifier) Notify(ctx context.Context, event ports.Event) error {
	switch data := event.Data.(type) {
	case ports.RunStartedEvent:
		n.presenter.Start(RunInfo{
			RunID:      data.RunID,
			Mode:       data.Mode,
			Base:       data.Base,
			Candidates: data.Candidates,
			Workers:    data.Workers,
			Timeout:    data.Timeout,
			CheckSite:  data.CheckSite,
		})
	case ports.StageStartedEvent:
		n.presenter.StartStage(StageInfo{
			Stage:   event.Stage,
			Probe:   data.Probe,
			Total:   data.Total,
			Workers: data.Workers,
			Timeout: data.Timeout,
		})
	case ports.ProbeResultEvent:
		n.presenter.Result(event.Stage, data.Result)
	case ports.StageCompletedEvent:
		n.presenter.FinishStage(StageStats{
			Stage:     event.Stage,
			Probe:     data.Probe,
			Succeeded: data.Succeeded,
			Failed:    data.Failed,
			Duration:  data.Duration,
		})
	case ports.RunCompletedEvent:
		if data.Report != nil {
			n.presenter.Finish(NewRunStats(data.Report))
		}
	}
	return nil
}

// Close implementa ports.Notifier.
func (n *Notifier) Close() error {
	return n.presenter.Close()
}
