// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Candidate errors
	ErrEmptyBase      = errors.New("base label cannot be empty")
	ErrInvalidBase    = errors.New("invalid base label")
	ErrInvalidTLD     = errors.New("invalid tld")
	ErrNoTLDs         = errors.New("tld list is empty")
	ErrNoCandidates   = errors.New("no candidates to probe")
	ErrInvalidOutcome = errors.New("invalid outcome")

	// Run errors
	ErrInvalidRunMode = errors.New("invalid run mode")
	ErrRunCanceled    = errors.New("run was canceled")
)
