package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/quiz"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// SummaryScreen shows the end-of-game report: score, rewards, unlocks and
// the daily login bonus.
type SummaryScreen struct {
	sum     session.Summary
	diff    quiz.Difficulty
	code    string
	profile *player.State
	cfg     config.Config
	audio   native.Audio
	notice  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum session.Summary, diff quiz.Difficulty, code string, p *player.State, cfg config.Config, audio native.Audio) *SummaryScreen {
	return &SummaryScreen{
		sum:     sum,
		diff:    diff,
		code:    code,
		profile: p,
		cfg:     cfg,
		audio:   audio,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Mission Report"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "Share score"},
		{Key: "C", Description: "Challenge a friend"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "s":
		text := native.ScoreText(s.cfg.PlayerName, s.sum.Score)
		if native.Share(text) {
			s.notice = "Score copied to clipboard!"
		} else {
			s.notice = text
		}
		s.audio.Play(native.EffectClick)
	case "c":
		code := s.code
		if code == "" {
			code = newChallengeCode()
			s.code = code
		}
		text := native.ChallengeText(s.cfg.PlayerName, code, s.sum.Score)
		if native.Share(text) {
			s.notice = fmt.Sprintf("Challenge %s copied to clipboard!", code)
		} else {
			s.notice = text
		}
		s.audio.Play(native.EffectClick)
	}
	return s, nil
}

// newChallengeCode mints a short shareable code. The code doubles as the
// question-stream seed, so a rematch on it replays these questions.
func newChallengeCode() string {
	return "Q" + strings.ToUpper(uuid.NewString()[:7])
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Mission complete!"))
	b.WriteString("\n\n")

	mins := int(s.sum.Duration.Minutes())
	secs := int(s.sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d:%02d", s.diff.DisplayName(), mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d        Answered: %d", s.sum.Score, s.sum.QuestionsAnswered)
	if s.diff.Endless() {
		statsLine += fmt.Sprintf("        Reached wave %d", s.sum.MaxWave)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(s.sum.Unlocked) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range s.sum.Unlocked {
			line := fmt.Sprintf("  %s %s — +%d coins", a.Icon, a.Name, a.Reward)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.sum.DailyReward.Granted {
		r := s.sum.DailyReward
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.StarYellow).Bold(true).
				Render(fmt.Sprintf("★ Daily login bonus: +%d coins (day %d)", r.Bonus, r.Streak))))
		b.WriteString("\n\n")
	}

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.notice)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
