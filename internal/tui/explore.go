// Package tui is an interactive strike-point explorer: arrow keys move
// the sample point through the poloidal plane while a panel shows the
// field, flux expansion, absorption, and heat-flux figures live.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/divertor"
	"github.com/san-kum/snowsim/internal/ecrh"
	"github.com/san-kum/snowsim/internal/field"
)

const step = 0.05

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model holds the scenario and the current sample point.
type Model struct {
	cfg   *config.Config
	field *field.Field
	point field.Point
}

func NewModel(cfg *config.Config) Model {
	return Model{
		cfg:   cfg,
		field: field.NewSnowflake(cfg.FieldOnAxis, cfg.MajorRadius),
		point: field.Point{R: cfg.Divertor.R, Z: cfg.Divertor.Z},
	}
}

// Point returns the current sample point.
func (m Model) Point() field.Point { return m.point }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.point.R-step > 0 {
			m.point.R -= step
		}
	case "right", "l":
		m.point.R += step
	case "up", "k":
		m.point.Z += step
	case "down", "j":
		m.point.Z -= step
	case "r":
		m.point = field.Point{R: m.cfg.Divertor.R, Z: m.cfg.Divertor.Z}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.field.At(m.point)
	fx := divertor.FluxExpansion(m.field, m.point)
	a := ecrh.Estimate(m.field, m.cfg.Density, m.cfg.Temperature, m.point)
	loading := divertor.Load(m.cfg.HeatingPower, a.Fraction, m.cfg.WettedArea, fx)

	rows := []string{
		row("Sample Point", fmt.Sprintf("R = %.2f m, Z = %.2f m", m.point.R, m.point.Z)),
		row("Field |B|", fmt.Sprintf("%.3f T", s.Total)),
		row("Poloidal (R,Z)", fmt.Sprintf("(%.3f, %.3f) T", s.PolR, s.PolZ)),
		row("Flux Expansion", fmt.Sprintf("%.2fx", fx)),
		row("Optical Depth", fmt.Sprintf("%.3f", a.OpticalDepth)),
		row("Absorption", fmt.Sprintf("%.1f%%", a.Fraction*100)),
		row("Final Heat Flux", fmt.Sprintf("%.2f MW/m^2", loading.Final)),
		row("Safety Margin", fmt.Sprintf("%.2fx", loading.SafetyMargin)),
		row("Viability", verdict(loading.Viable)),
	}

	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("snowflake strike-point explorer"),
		panel,
		helpStyle.Render("arrows/hjkl move · r reset · q quit"),
	)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func verdict(viable bool) string {
	if viable {
		return okStyle.Render("SUCCESS")
	}
	return badStyle.Render("FAIL")
}

// Run starts the explorer and blocks until quit.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg)).Run()
	return err
}
