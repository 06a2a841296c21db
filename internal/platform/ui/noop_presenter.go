// internal/platform/ui/noop_presenter.go
package ui

import "domainsearch/internal/core/domain"

// NoopPresenter descarta toda la salida (--quiet).
type NoopPresenter struct{}

func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (*NoopPresenter) Start(RunInfo)                           {}
func (*NoopPresenter) StartStage(StageInfo)                    {}
func (*NoopPresenter) Result(domain.Stage, domain.ProbeResult) {}
func (*NoopPresenter) FinishStage(StageStats)                  {}
func (*NoopPresenter) Info(string)                             {}
func (*NoopPresenter) Warning(string)                          {}
func (*NoopPresenter) Error(string)                            {}
func (*NoopPresenter) Finish(RunStats)                         {}
func (*NoopPresenter) Close() error                            { return nil }
