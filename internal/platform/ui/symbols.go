// internal/platform/ui/symbols.go
package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"domainsearch/internal/core/domain"
)

// Mark clasifica visualmente un resultado de probe.
type Mark int

const (
	MarkHidden Mark = iota // no se imprime
	MarkFound              // el dominio resuelve
	MarkAlive              // responde en 443
	MarkDown               // no responde en 443
)

// MarkFor decide cómo se muestra un resultado. Los fallos de resolución se
// ocultan: casi todos los candidatos de una búsqueda no existen.
func MarkFor(stage domain.Stage, outcome domain.Outcome) Mark {
	switch {
	case stage == domain.StageResolve && outcome == domain.OutcomeSuccess:
		return MarkFound
	case stage == domain.StageHTTPS && outcome == domain.OutcomeSuccess:
		return MarkAlive
	case stage == domain.StageHTTPS:
		return MarkDown
	default:
		return MarkHidden
	}
}

// Message texto de la línea para el candidato c.
func (m Mark) Message(c domain.Candidate) string {
	switch m {
	case MarkFound:
		return fmt.Sprintf("%s exists!", c)
	case MarkAlive:
		return fmt.Sprintf("%s responds on 443!", c)
	case MarkDown:
		return fmt.Sprintf("%s no response on 443", c)
	default:
		return ""
	}
}

// Style verde para aciertos, rojo para MarkDown.
func (m Mark) Style() *pterm.Style {
	if m == MarkDown {
		return pterm.NewStyle(pterm.FgRed)
	}
	return pterm.NewStyle(pterm.FgGreen)
}

// Render retorna la línea coloreada.
func (m Mark) Render(c domain.Candidate) string {
	return m.Style().Sprint(m.Message(c))
}

// Icons
var (
	IconTarget = "🎯"
	IconTime   = "⏱"
	IconStats  = "📊"
)
