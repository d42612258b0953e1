package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// AchievementsScreen lists the full achievement catalog with unlock state.
type AchievementsScreen struct {
	profile *player.State
	offset  int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(p *player.State) *AchievementsScreen {
	return &AchievementsScreen{profile: p}
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

func (a *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.offset > 0 {
			a.offset--
		}
	case "down", "j":
		if a.offset < len(player.Achievements())-1 {
			a.offset++
		}
	}
	return a, nil
}

func (a *AchievementsScreen) View(width, height int) string {
	catalog := player.Achievements()
	unlocked := 0
	for _, ach := range catalog {
		if a.profile.HasAchievement(ach.ID) {
			unlocked++
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Unlocked %d of %d", unlocked, len(catalog))))
	b.WriteString("\n\n")

	// Leave room for the header lines above.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	end := a.offset + visible
	if end > len(catalog) {
		end = len(catalog)
	}

	for _, ach := range catalog[a.offset:end] {
		var line string
		var style lipgloss.Style
		if a.profile.HasAchievement(ach.ID) {
			line = fmt.Sprintf("%s %-22s +%d coins", ach.Icon, ach.Name, ach.Reward)
			style = lipgloss.NewStyle().Foreground(theme.Text)
		} else {
			line = fmt.Sprintf("🔒 %-22s +%d coins", ach.Name, ach.Reward)
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
