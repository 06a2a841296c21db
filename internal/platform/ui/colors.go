// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Colores
var (
	// GhostCyan acentos (label base, nombres)
	GhostCyan = pterm.NewRGB(0, 206, 209)

	// AshGray texto secundario
	AshGray = pterm.NewRGB(128, 128, 128)
)

// Estilos preconfigurados
var (
	// StyleAccent - Estilo para acentos y highlights
	StyleAccent = GhostCyan.ToRGBStyle()

	// StyleSecondary - Estilo para texto secundario
	StyleSecondary = AshGray.ToRGBStyle()
)
