// internal/core/domain/candidate.go
package domain

import (
	"fmt"
	"strings"

	"domainsearch/internal/platform/validator"
)

// Candidate es un nombre de dominio bajo prueba. Es opaco para el core:
// solo se usa como clave y como argumento de los probes.
type Candidate string

// String retorna el nombre como string.
func (c Candidate) String() string {
	return string(c)
}

// NormalizeBase valida y normaliza el label base (e.g. "Advania" -> "advania").
// Labels internacionales se convierten a punycode.
func NormalizeBase(base string) (string, error) {
	if validator.IsEmpty(base) {
		return "", ErrEmptyBase
	}

	ascii, err := validator.ToASCII(base)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidBase, base, err)
	}

	if !validator.IsLabel(ascii) {
		return "", fmt.Errorf("%w: %s", ErrInvalidBase, base)
	}

	return ascii, nil
}

// Expand combina el label base con cada TLD (".com" -> "base.com").
// Los TLDs repetidos se omiten; los que tienen formato inválido (una línea
// mal editada en tlds.txt) no detienen la búsqueda y se devuelven en skipped.
// Solo es error que no quede ningún TLD válido.
func Expand(base string, tlds []string) (candidates []Candidate, skipped []string, err error) {
	label, err := NormalizeBase(base)
	if err != nil {
		return nil, nil, err
	}

	if len(tlds) == 0 {
		return nil, nil, ErrNoTLDs
	}

	seen := make(map[Candidate]struct{}, len(tlds))
	candidates = make([]Candidate, 0, len(tlds))

	for _, raw := range tlds {
		tld := strings.ToLower(strings.TrimSpace(raw))
		if !strings.HasPrefix(tld, ".") {
			tld = "." + tld
		}
		if !validator.IsTLD(tld) {
			skipped = append(skipped, raw)
			continue
		}

		c := Candidate(label + tld)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return nil, skipped, fmt.Errorf("%w: all %d entries are invalid: %w", ErrNoTLDs, len(skipped), ErrInvalidTLD)
	}

	return candidates, skipped, nil
}

// ParseCandidates convierte líneas (e.g. de un archivo) en candidatos:
// recorta espacios, omite líneas vacías y comentarios "#", y elimina duplicados
// conservando el orden de primera aparición.
func ParseCandidates(lines []string) []Candidate {
	seen := make(map[Candidate]struct{}, len(lines))
	candidates := make([]Candidate, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c := Candidate(validator.NormalizeDomain(line))
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, c)
	}

	return candidates
}

// Strings convierte candidatos a []string.
func Strings(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = string(c)
	}
	return out
}

// WithoutPublicSuffix retorna los candidatos cuyo sufijo no figura como
// ICANN en la Public Suffix List (typos, TLDs privados o inexistentes en
// una lista --input). Se siguen sondeando; solo sirve para avisar.
func WithoutPublicSuffix(candidates []Candidate) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if !validator.HasICANNSuffix(string(c)) {
			out = append(out, c)
		}
	}
	return out
}
