package shop

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// item is one purchasable row: a rocket or a power-up.
type item struct {
	rocket  *player.Rocket
	powerUp player.PowerUpKind
}

// ShopScreen sells rockets and power-ups for coins.
type ShopScreen struct {
	profile  *player.State
	st       *store.Store
	audio    native.Audio
	items    []item
	selected int
	notice   string
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates a new ShopScreen.
func New(p *player.State, st *store.Store, audio native.Audio) *ShopScreen {
	rockets := player.Rockets()
	items := make([]item, 0, len(rockets)+2)
	for i := range rockets {
		items = append(items, item{rocket: &rockets[i]})
	}
	items = append(items,
		item{powerUp: player.PowerUpHint},
		item{powerUp: player.PowerUpTimeFreeze},
	)

	return &ShopScreen{
		profile: p,
		st:      st,
		audio:   audio,
		items:   items,
	}
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Rocket Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Enter", Description: "Buy / Equip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
	case "enter":
		s.buy(s.items[s.selected])
	}
	return s, nil
}

// buy attempts the purchase and saves the profile on success.
func (s *ShopScreen) buy(it item) {
	var ok bool
	switch {
	case it.rocket != nil:
		alreadyOwned := s.profile.OwnsRocket(it.rocket.Icon)
		ok = s.profile.BuyRocket(it.rocket.Icon)
		switch {
		case !ok:
			s.notice = "Not enough coins!"
		case alreadyOwned:
			s.notice = fmt.Sprintf("%s equipped!", it.rocket.Name)
		default:
			s.notice = fmt.Sprintf("%s is yours — equipped!", it.rocket.Name)
			for _, a := range progression.CheckRocketCollection(s.profile) {
				s.notice += fmt.Sprintf("  %s %s unlocked (+%d coins)!", a.Icon, a.Name, a.Reward)
			}
		}
	default:
		ok = s.profile.BuyPowerUp(it.powerUp, player.PowerUpCost(it.powerUp))
		if ok {
			s.notice = "Power-up added!"
		} else {
			s.notice = "Not enough coins!"
		}
	}

	if !ok {
		s.audio.Play(native.EffectWrong)
		return
	}
	s.audio.Play(native.EffectPowerUp)
	_ = s.st.PlayerRepo().Save(context.Background(), s.profile)
}

func (s *ShopScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("● %d coins", s.profile.Coins)))
	b.WriteString("\n\n")

	for i, it := range s.items {
		line := s.renderItem(it)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			line = "▸ " + line
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.notice)))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (s *ShopScreen) renderItem(it item) string {
	if it.rocket != nil {
		r := it.rocket
		status := fmt.Sprintf("● %d", r.Cost)
		switch {
		case s.profile.EquippedRocket == r.Icon:
			status = "EQUIPPED"
		case s.profile.OwnsRocket(r.Icon):
			status = "owned"
		}
		return fmt.Sprintf("%s %-14s %-26s %s", r.Icon, r.Name, r.Perk, status)
	}

	var name, icon string
	var held int
	switch it.powerUp {
	case player.PowerUpHint:
		name, icon, held = "Hint", "💡", s.profile.PowerUps.Hint
	case player.PowerUpTimeFreeze:
		name, icon, held = "Time Freeze", "❄️", s.profile.PowerUps.TimeFreeze
	}
	return fmt.Sprintf("%s %-14s you have %-17d ● %d",
		icon, name, held, player.PowerUpCost(it.powerUp))
}
