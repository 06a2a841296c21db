// internal/platform/registry/helpers.go
package registry

import (
	"time"

	"domainsearch/internal/platform/errors"
)

// Validaciones compartidas por las factories de probes.

// ValidateTimeout exige un timeout positivo (ErrInvalidTimeout).
func ValidateTimeout(d time.Duration) error {
	if d <= 0 {
		return errors.Wrapf(errors.ErrInvalidTimeout, "got %v", d)
	}
	return nil
}

// ValidatePort exige un puerto TCP en [1, 65535] (ErrInvalidInput).
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return errors.Wrapf(errors.ErrInvalidInput, "port must be between 1 and 65535, got %d", port)
	}
	return nil
}
