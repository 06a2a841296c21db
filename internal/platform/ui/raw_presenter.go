// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"domainsearch/internal/core/domain"
)

// LogFormat define el formato de salida para el modo raw
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Formato logfmt (default)
	LogFormatJSON LogFormat = "json" // Formato JSON estructurado
)

// RawPresenter implementa el Presenter para modo raw (logs sin formato visual)
type RawPresenter struct {
	format LogFormat
	out    io.Writer
	mu     sync.Mutex
}

// NewRawPresenter crea un nuevo RawPresenter. Con out nil escribe en stdout.
func NewRawPresenter(format LogFormat, out io.Writer) *RawPresenter {
	if out == nil {
		out = os.Stdout
	}
	return &RawPresenter{
		format: format,
		out:    out,
	}
}

// log escribe un log en el formato configurado
func (r *RawPresenter) log(level, message string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := time.Now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText escribe en formato logfmt: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]interface{}) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), message}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, r.formatValue(fields[k])))
	}

	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// logJSON escribe en formato JSON estructurado
func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]interface{}) {
	logEntry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}

	if len(fields) > 0 {
		data := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			if d, ok := v.(time.Duration); ok {
				v = d.String()
			}
			data[k] = v
		}
		logEntry["data"] = data
	}

	jsonBytes, _ := json.Marshal(logEntry)
	fmt.Fprintln(r.out, string(jsonBytes))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func (r *RawPresenter) formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.Contains(val, " ") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%.1f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start inicia la presentación
func (r *RawPresenter) Start(info RunInfo) {
	r.log("INFO", "run_started", map[string]interface{}{
		"run_id":     info.RunID,
		"mode":       string(info.Mode),
		"base":       info.Base,
		"candidates": info.Candidates,
		"workers":    info.Workers,
		"timeout":    info.Timeout,
		"check_site": info.CheckSite,
	})
}

// StartStage notifica el inicio de un stage
func (r *RawPresenter) StartStage(stage StageInfo) {
	r.log("INFO", "stage_started", map[string]interface{}{
		"stage":   string(stage.Stage),
		"probe":   stage.Probe,
		"total":   stage.Total,
		"workers": stage.Workers,
	})
}

// Result registra el resultado de un probe
func (r *RawPresenter) Result(stage domain.Stage, result domain.ProbeResult) {
	fields := map[string]interface{}{
		"stage":    string(stage),
		"domain":   string(result.Candidate),
		"outcome":  result.Outcome.String(),
		"duration": result.Duration.Round(time.Millisecond),
	}
	if result.Err != nil {
		fields["error"] = result.Err.Error()
	}
	r.log("INFO", "probe_result", fields)
}

// FinishStage notifica la finalización de un stage
func (r *RawPresenter) FinishStage(stats StageStats) {
	r.log("INFO", "stage_completed", map[string]interface{}{
		"stage":     string(stats.Stage),
		"succeeded": stats.Succeeded,
		"failed":    stats.Failed,
		"duration":  stats.Duration.Round(time.Millisecond),
	})
}

// Info muestra un mensaje informativo
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg, nil)
}

// Warning muestra una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg, nil)
}

// Error muestra un error
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg, nil)
}

// Finish finaliza la presentación con estadísticas finales
func (r *RawPresenter) Finish(stats RunStats) {
	fields := map[string]interface{}{
		"run_id":     stats.RunID,
		"candidates": stats.Candidates,
		"duration":   stats.Duration.Round(time.Millisecond),
	}
	if stats.Resolve != nil {
		fields["found"] = stats.Resolve.Succeeded
	}
	if stats.HTTPS != nil {
		fields["alive"] = stats.HTTPS.Succeeded
	}

	r.log("INFO", "run_completed", fields)
}

// Close limpia recursos
func (r *RawPresenter) Close() error {
	return nil
}
