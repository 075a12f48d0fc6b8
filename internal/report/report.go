// Package report renders the evaluation results as the formatted text
// report: banner, parameters, magnetic configuration, ECRH heating,
// heat flux analysis, performance summary, and a key-results recap.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/divertor"
	"github.com/san-kum/snowsim/internal/sim"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))
)

const rule = "============================================================"

// Render produces the full report for one evaluation.
func Render(cfg *config.Config, res sim.Result) string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render(rule) + "\n")
	b.WriteString(bannerStyle.Render("SNOWFLAKE DIVERTOR SIMULATION") + "\n")
	b.WriteString(bannerStyle.Render(rule) + "\n")
	line(&b, "Plasma", fmt.Sprintf("n_e = %.1e m^-3, T_e = %.1f keV", cfg.Density, cfg.Temperature))
	line(&b, "Heating Power", fmt.Sprintf("%.0f MW", cfg.HeatingPower))
	line(&b, "Wetted Area", fmt.Sprintf("%.1f m^2", cfg.WettedArea))

	section(&b, "1. MAGNETIC CONFIGURATION:")
	line(&b, "   Magnetic Field", fmt.Sprintf("%.2f T", res.FieldTotal))
	line(&b, "   Flux Expansion", fmt.Sprintf("%.1fx", res.FluxExpansion))

	section(&b, "2. ECRH HEATING:")
	line(&b, "   Optical Depth", fmt.Sprintf("%.3f", res.OpticalDepth))
	line(&b, "   Absorption", fmt.Sprintf("%.1f%%", res.ECRHEfficiency*100))

	section(&b, "3. HEAT FLUX ANALYSIS:")
	line(&b, "   Power to Divertor", fmt.Sprintf("%.1f MW", res.PowerToDivertor))
	line(&b, "   Raw Heat Flux", fmt.Sprintf("%.1f MW/m^2", res.RawHeatFlux))
	line(&b, "   After Snowflake", fmt.Sprintf("%.1f MW/m^2", res.FinalHeatFlux))

	section(&b, "4. PERFORMANCE SUMMARY:")
	line(&b, "   Heat Flux Reduction", fmt.Sprintf("%.1f%%", res.HeatReduction))
	line(&b, "   ITER Limit", fmt.Sprintf("%.1f MW/m^2", divertor.ITERLimit))
	line(&b, "   Safety Margin", fmt.Sprintf("%.2fx", res.SafetyMargin))
	b.WriteString(labelStyle.Render("   Overall Viability: ") + verdict(res.Viable) + "\n")

	b.WriteString("\n" + bannerStyle.Render(rule) + "\n")
	b.WriteString(bannerStyle.Render("KEY RESULTS:") + "\n")
	b.WriteString(bannerStyle.Render(rule) + "\n")
	line(&b, "1. Flux Expansion", fmt.Sprintf("%.1fx", res.FluxExpansion))
	line(&b, "2. Heat Flux Reduction", fmt.Sprintf("%.1f%%", res.HeatReduction))
	line(&b, "3. Final Heat Flux", fmt.Sprintf("%.2f MW/m^2", res.FinalHeatFlux))
	line(&b, "4. Safety Margin", fmt.Sprintf("%.2fx", res.SafetyMargin))
	b.WriteString(labelStyle.Render("5. Overall Viability: ") + verdict(res.Viable) + "\n")

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + sectionStyle.Render(title) + "\n")
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label+": ") + valueStyle.Render(value) + "\n")
}

func verdict(viable bool) string {
	if viable {
		return successStyle.Render("SUCCESS")
	}
	return failStyle.Render("FAIL")
}
