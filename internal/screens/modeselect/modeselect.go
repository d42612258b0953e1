package modeselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/quiz"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/game"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// ModeSelectScreen lets the player pick a difficulty or enter a friend's
// challenge code. A code makes the question stream reproducible, so both
// players face the same questions.
type ModeSelectScreen struct {
	profile   *player.State
	st        *store.Store
	cfg       config.Config
	audio     native.Audio
	ads       native.Ads
	modes     []quiz.Difficulty
	selected  int
	codeInput components.TextInput
	entering  bool
}

var _ screen.Screen = (*ModeSelectScreen)(nil)
var _ screen.KeyHintProvider = (*ModeSelectScreen)(nil)

// New creates a new ModeSelectScreen.
func New(p *player.State, st *store.Store, cfg config.Config, audio native.Audio, ads native.Ads) *ModeSelectScreen {
	return &ModeSelectScreen{
		profile:   p,
		st:        st,
		cfg:       cfg,
		audio:     audio,
		ads:       ads,
		modes:     quiz.AllDifficulties(),
		codeInput: components.NewTextInput("Challenge code...", false, 16),
	}
}

func (m *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (m *ModeSelectScreen) Title() string {
	return "Select Mission"
}

func (m *ModeSelectScreen) KeyHints() []layout.KeyHint {
	if m.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start challenge"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Launch"},
		{Key: "C", Description: "Challenge code"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEsc is true while the code input is open so Esc cancels the
// input instead of leaving the screen.
func (m *ModeSelectScreen) HandlesEsc() bool {
	return m.entering
}

func (m *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.entering {
			var cmd tea.Cmd
			m.codeInput, cmd = m.codeInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.entering {
		switch kmsg.String() {
		case "esc":
			m.entering = false
			return m, nil
		case "enter":
			code := strings.TrimSpace(m.codeInput.Value())
			if code == "" {
				return m, nil
			}
			return m, m.launch(m.modes[m.selected], code)
		}
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		return m, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.modes)-1 {
			m.selected++
		}
	case "c":
		m.entering = true
		m.codeInput = components.NewTextInput("Challenge code...", false, 16)
		return m, m.codeInput.Init()
	case "enter":
		return m, m.launch(m.modes[m.selected], "")
	}

	return m, nil
}

// launch replaces this screen with the game so finishing a run lands the
// player back at mission control, not on a stale picker.
func (m *ModeSelectScreen) launch(diff quiz.Difficulty, code string) tea.Cmd {
	m.audio.Play(native.EffectClick)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: game.New(m.profile, m.st, m.cfg, m.audio, m.ads, diff, code),
		}
	}
}

func (m *ModeSelectScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose your mission"))
	b.WriteString("\n\n")

	for i, diff := range m.modes {
		s := diff.Settings()

		var meta string
		switch {
		case diff.Endless():
			meta = fmt.Sprintf("endless waves · %d life", s.Lives)
		case s.Time == 0:
			meta = fmt.Sprintf("%d questions · no timer", s.Questions)
		default:
			meta = fmt.Sprintf("%d questions · %ds each · %d lives", s.Questions, s.Time, s.Lives)
		}
		line := fmt.Sprintf("%-10s %s", diff.DisplayName(), meta)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.selected {
			line = "▸ " + line
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if m.entering {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			m.codeInput.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Same code, same questions — race a friend!")))
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Press C to enter a challenge code")))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
