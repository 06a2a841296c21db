// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// formatDuration: "850ms", "2.3s", "1m05s".
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

func onOff(b bool) string {
	if b {
		return pterm.NewStyle(pterm.FgGreen).Sprint("on")
	}
	return StyleSecondary.Sprint("off")
}
