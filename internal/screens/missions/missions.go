package missions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/daily"
	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// MissionsScreen shows today's three missions, the login streak, and a
// reward-video offer when the ad provider has one.
type MissionsScreen struct {
	profile  *player.State
	st       *store.Store
	audio    native.Audio
	ads      native.Ads
	selected int
	notice   string
}

var _ screen.Screen = (*MissionsScreen)(nil)
var _ screen.KeyHintProvider = (*MissionsScreen)(nil)

// New creates a new MissionsScreen.
func New(p *player.State, st *store.Store, audio native.Audio, ads native.Ads) *MissionsScreen {
	return &MissionsScreen{
		profile: p,
		st:      st,
		audio:   audio,
		ads:     ads,
	}
}

func (m *MissionsScreen) Init() tea.Cmd {
	return nil
}

func (m *MissionsScreen) Title() string {
	return "Daily Missions"
}

func (m *MissionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Claim"},
		{Key: "W", Description: "Watch ad (+50)"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MissionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.profile.DailyChallenges)-1 {
			m.selected++
		}
	case "enter":
		m.claim()
	case "w":
		m.watchAd()
	}
	return m, nil
}

func (m *MissionsScreen) claim() {
	if m.selected >= len(m.profile.DailyChallenges) {
		return
	}
	c := m.profile.DailyChallenges[m.selected]
	reward, ok := daily.Claim(m.profile, c.ID)
	if !ok {
		if c.Claimed {
			m.notice = "Already claimed."
		} else {
			m.notice = "Finish the mission first!"
		}
		return
	}
	m.audio.Play(native.EffectPowerUp)
	m.notice = fmt.Sprintf("Claimed +%d coins!", reward)
	_ = m.st.PlayerRepo().Save(context.Background(), m.profile)
}

func (m *MissionsScreen) watchAd() {
	if !m.ads.ShowRewardVideo() {
		m.notice = "No reward video available."
		return
	}
	m.profile.AddCoins(native.RewardVideoCoins)
	m.audio.Play(native.EffectPowerUp)
	m.notice = fmt.Sprintf("Thanks for watching — +%d coins!", native.RewardVideoCoins)
	_ = m.st.PlayerRepo().Save(context.Background(), m.profile)
}

func (m *MissionsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.StarYellow).
		Bold(true).
		Render(fmt.Sprintf("★ %d day login streak — tomorrow's bonus: %d coins",
			m.profile.DailyStreak, (m.profile.DailyStreak+1)*10)))
	b.WriteString("\n\n")

	for i, c := range m.profile.DailyChallenges {
		cursor := "  "
		if i == m.selected {
			cursor = "▸ "
		}

		var status string
		var style lipgloss.Style
		switch {
		case c.Claimed:
			status = "✓ claimed"
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case c.Completed:
			status = fmt.Sprintf("CLAIM +%d", c.Reward)
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		default:
			status = fmt.Sprintf("+%d coins", c.Reward)
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}

		line := fmt.Sprintf("%s%-34s %s", cursor, c.Description, status)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		current := c.Current
		if current > c.Target {
			current = c.Target
		}
		bar := components.ProgressBar{
			Percent: float64(current) / float64(c.Target) * 100,
			Width:   min(width-20, 44),
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			bar.View()+lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d", current, c.Target))))
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(m.notice)))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
