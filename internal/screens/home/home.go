package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/achievements"
	"github.com/abhisek/mathquest/internal/screens/missions"
	"github.com/abhisek/mathquest/internal/screens/modeselect"
	"github.com/abhisek/mathquest/internal/screens/shop"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
)

// HomeScreen is the mission-control screen of the game.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	profile    *player.State
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(p *player.State, st *store.Store, cfg config.Config, audio native.Audio, ads native.Ads) *HomeScreen {
	menuLabels := []string{"START MISSION", "ROCKET SHOP", "ACHIEVEMENTS", "DAILY MISSIONS", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modeselect.New(p, st, cfg, audio, ads)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shop.New(p, st, audio)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(p)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: missions.New(p, st, audio, ads)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		profile:    p,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderRocketBox(h.rocketVariant(), cw))
	}

	p := h.profile
	sections = append(sections, renderStatsBar(
		p.Level, p.XP, p.Level*100, p.Coins, p.DailyStreak, cw, compact))

	if compact {
		sections = append(sections, renderCabinetMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderCabinetMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Mission Control"
}

// rocketVariant picks the mascot pose from the profile: launching when a
// completed mission awaits its claim, celebrating on a long login streak.
func (h *HomeScreen) rocketVariant() RocketVariant {
	for _, c := range h.profile.DailyChallenges {
		if c.Completed && !c.Claimed {
			return RocketLaunching
		}
	}
	if h.profile.DailyStreak >= 3 {
		return RocketCelebrate
	}
	return RocketIdle
}

// renderRocketBox renders the rocket centered in a box matching content width.
func renderRocketBox(variant RocketVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderRocket(variant))
}
