package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	if g.confirming {
		return renderQuitConfirm(width, height)
	}

	switch g.sess.Phase {
	case session.PhaseFeedback:
		return g.renderFeedback(width, height)
	case session.PhaseWaveTransition:
		return g.renderWaveTransition(width, height)
	}
	return g.renderQuestion(width, height)
}

func (g *GameScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	b.WriteString(g.renderStatusLine(width))
	b.WriteString("\n\n")

	if g.sess.Paused {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("PAUSED — press P to resume"))
		return lipgloss.NewStyle().Height(height).Render(b.String())
	}

	q := g.sess.CurrentQuestion

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s = ?", q.Display))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(question)))
	b.WriteString("\n\n")

	if q.VisualAid > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Render(strings.TrimSpace(strings.Repeat("● ", q.VisualAid)))))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.input.View()))
	b.WriteString("\n")

	if g.hintText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(g.hintText)))
	}

	if g.sess.FrozenTicks > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Render(fmt.Sprintf("❄ Time frozen (%ds)", g.sess.FrozenTicks))))
	}

	b.WriteString("\n")
	b.WriteString(g.renderProgress(width))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// renderStatusLine shows score, streak, combo, and mode-specific extras.
func (g *GameScreen) renderStatusLine(width int) string {
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Score %d", g.sess.Score)),
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Streak %d", g.sess.Streak)),
	}
	if g.sess.Combo >= 2 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.StarYellow).Bold(true).
			Render(fmt.Sprintf("Combo ×%d", g.sess.Combo)))
	}
	if g.sess.HasLives() {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Error).
			Render("♥ "+fmt.Sprint(g.sess.Lives)))
	}
	if g.sess.Difficulty.Timed() {
		timerStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		if g.sess.TimeLeft <= 3 {
			timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		parts = append(parts, timerStyle.Render(fmt.Sprintf("⏱ %ds", g.sess.TimeLeft)))
	}
	if g.sess.ChallengeCode != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("code "+g.sess.ChallengeCode))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(parts, "    "))
}

func (g *GameScreen) renderProgress(width int) string {
	label := "Progress"
	if g.sess.Difficulty.Endless() {
		label = fmt.Sprintf("Wave %d", g.sess.Wave)
	}
	bar := components.ProgressBar{
		Label:   label,
		Percent: g.sess.Progress,
		Width:   min(width-8, 50),
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
}

func (g *GameScreen) renderFeedback(width, height int) string {
	res := g.lastResult
	var b strings.Builder

	b.WriteString(g.renderStatusLine(width))
	b.WriteString("\n\n")

	if res == nil {
		return lipgloss.NewStyle().Height(height).Render(b.String())
	}

	if res.Correct {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("✓ Correct!  +%d points", res.Outcome.Points))))
		b.WriteString("\n")

		extras := make([]string, 0, 2)
		if res.Outcome.Coins > 0 {
			extras = append(extras, fmt.Sprintf("+%d coins", res.Outcome.Coins))
		}
		if res.Outcome.XP > 0 {
			extras = append(extras, fmt.Sprintf("+%d xp", res.Outcome.XP))
		}
		if len(extras) > 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(extras, "   "))))
			b.WriteString("\n")
		}
		if res.Outcome.LevelsGained > 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.StarYellow).Bold(true).
					Render(fmt.Sprintf("🚀 LEVEL UP! Now level %d", g.profile.Level))))
			b.WriteString("\n")
		}
	} else {
		headline := fmt.Sprintf("✗ Not quite — the answer was %d", res.CorrectAnswer)
		if g.timedOut {
			headline = fmt.Sprintf("⏱ Time's up! The answer was %d", res.CorrectAnswer)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(headline)))
		b.WriteString("\n")
	}

	for _, a := range res.Outcome.Unlocked {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("%s Achievement unlocked: %s (+%d coins)", a.Icon, a.Name, a.Reward))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press any key to continue")))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (g *GameScreen) renderWaveTransition(width, height int) string {
	banner := lipgloss.NewStyle().
		Foreground(theme.StarYellow).
		Bold(true).
		Render(fmt.Sprintf("🌊 Wave %d cleared!", g.sess.Wave))

	next := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Wave %d incoming — it gets faster...", g.sess.Wave+1))

	content := banner + "\n\n" + next
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this mission?") +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Your score so far will be kept.  [Y]es / [N]o")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(content))
}
