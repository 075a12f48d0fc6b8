package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/snowsim/internal/config"
	"github.com/stretchr/testify/assert"
)

func key(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMoveAndReset(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	next, _ := m.Update(key(tea.KeyRight))
	m = next.(Model)
	assert.InDelta(t, 8.05, m.Point().R, 1e-12)

	next, _ = m.Update(key(tea.KeyDown))
	m = next.(Model)
	assert.InDelta(t, -2.55, m.Point().Z, 1e-12)

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	assert.Equal(t, 8.0, m.Point().R)
	assert.Equal(t, -2.5, m.Point().Z)
}

func TestCannotCrossAxis(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Divertor.R = 0.04
	m := NewModel(cfg)

	// Moving left from R near zero would make the 1/R term blow up.
	next, _ := m.Update(key(tea.KeyLeft))
	m = next.(Model)
	assert.Equal(t, 0.04, m.Point().R)
}

func TestQuit(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	_, cmd := m.Update(runeKey('q'))
	assert.NotNil(t, cmd)
}

func TestViewShowsMetrics(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	out := m.View()
	for _, want := range []string{"Field |B|", "Flux Expansion", "Absorption", "Safety Margin"} {
		assert.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}
