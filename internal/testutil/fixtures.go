// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureTLDs contiene una lista corta de TLDs con el formato de tlds.txt.
var FixtureTLDs = []string{
	".com",
	".net",
	".org",
	".is",
	".xn--p1ai",
}

// FixtureCandidates contiene candidatos válidos.
var FixtureCandidates = []string{
	"advania.com",
	"advania.net",
	"advania.org",
	"advania.is",
	"advania.xn--p1ai",
}

// FixtureInvalidDomains contiene dominios inválidos.
var FixtureInvalidDomains = []string{
	"",
	"not a domain",
	"192.168.1.1",
	"-invalid.com",
	"invalid-.com",
	".example.com",
	"example..com",
}

// FixtureIANAList es un fragmento del archivo tlds-alpha-by-domain.txt de IANA.
const FixtureIANAList = `# Version 2026101600, Last Updated Fri Oct 16 07:07:01 2026 UTC
AAA
COM

IS
NET
XN--P1AI
`
