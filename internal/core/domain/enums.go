// internal/core/domain/enums.go
package domain

// Outcome es el resultado etiquetado de un probe: éxito o fallo.
type Outcome string

const (
	// OutcomeSuccess el candidato resolvió / respondió
	OutcomeSuccess Outcome = "success"

	// OutcomeFailure cualquier otro caso (not found, timeout, refused, panic)
	OutcomeFailure Outcome = "failure"
)

// IsValid verifica si el outcome es válido.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeFailure:
		return true
	default:
		return false
	}
}

// String retorna la representación string del outcome.
func (o Outcome) String() string {
	return string(o)
}

// Stage identifica cada pasada del dispatcher sobre un conjunto de candidatos.
type Stage string

const (
	// StageResolve resolución DNS de los candidatos
	StageResolve Stage = "resolve"

	// StageHTTPS conexión TCP al puerto 443
	StageHTTPS Stage = "https"
)

// IsValid verifica si el stage es válido.
func (s Stage) IsValid() bool {
	switch s {
	case StageResolve, StageHTTPS:
		return true
	default:
		return false
	}
}

// String retorna la representación string del stage.
func (s Stage) String() string {
	return string(s)
}

// RunMode define de dónde salen los candidatos de una ejecución.
type RunMode string

const (
	// RunModeSearch expande un label base con la lista de TLDs
	RunModeSearch RunMode = "search"

	// RunModeInput carga los dominios desde un archivo
	RunModeInput RunMode = "input"
)

// IsValid verifica si el modo es válido.
func (m RunMode) IsValid() bool {
	switch m {
	case RunModeSearch, RunModeInput:
		return true
	default:
		return false
	}
}

// String retorna la representación string del modo.
func (m RunMode) String() string {
	return string(m)
}
