package validator

import (
	"net"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
	labelRegex  = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
	tldRegex    = regexp.MustCompile(`^\.[a-zA-Z]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
)

// Domain validators

// IsDomain verifica si un string es un dominio válido (ASCII / punycode).
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	// Verificar que no sea una IP
	if net.ParseIP(domain) != nil {
		return false
	}

	return true
}

// IsLabel verifica si s es una sola etiqueta DNS (sin puntos).
func IsLabel(s string) bool {
	return labelRegex.MatchString(s)
}

// IsTLD verifica el formato ".tld" usado en la lista de TLDs.
func IsTLD(s string) bool {
	return tldRegex.MatchString(s)
}

// NormalizeDomain normaliza un dominio a su forma canónica.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimSuffix(domain, ".")
	return domain
}

// ToASCII convierte un label o dominio internacional (IDN) a punycode.
// Devuelve el valor normalizado sin cambios si ya es ASCII.
func ToASCII(s string) (string, error) {
	s = NormalizeDomain(s)
	return idna.Lookup.ToASCII(s)
}

// HasICANNSuffix reporta si el sufijo público del dominio está gestionado
// por ICANN según la Public Suffix List.
func HasICANNSuffix(domain string) bool {
	domain = NormalizeDomain(domain)
	if !strings.Contains(domain, ".") {
		return false
	}
	_, icann := publicsuffix.PublicSuffix(domain)
	return icann
}

// Network validators

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// IsPort valida que un puerto esté en el rango válido [1-65535].
func IsPort(portStr string) bool {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}

// IsHostPort valida direcciones "host:port" (e.g. "1.1.1.1:53").
func IsHostPort(addr string) bool {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return false
	}
	if !IsPort(port) {
		return false
	}
	return IsIP(host) || IsDomain(host)
}

// Generic validators

// IsEmpty verifica si un string está vacío o solo contiene espacios.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
