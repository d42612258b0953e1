package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// RocketVariant selects which rocket art to display.
type RocketVariant int

const (
	RocketIdle      RocketVariant = iota // Default indigo, on the pad
	RocketLaunching                      // Gold, exhaust — rewards waiting
	RocketCelebrate                      // Cyan, stars — fresh achievement
)

const rocketIdle = `   ▲
  ╱█╲
 ╱ █ ╲
 │±×÷│
 ╰┬─┬╯`

const rocketLaunching = `   ▲
  ╱█╲
 ╱ █ ╲
 │±×÷│
 ╰┬─┬╯
  ▒▒▒
   ░`

const rocketCelebrate = ` ✦ ▲ ✦
  ╱█╲
 ╱ █ ╲
 │±×÷│
 ╰┬─┬╯`

// RenderRocket returns the rocket ASCII art for the given variant.
func RenderRocket(variant RocketVariant) string {
	var art string
	fg := theme.Primary

	switch variant {
	case RocketLaunching:
		art = rocketLaunching
		fg = theme.StarYellow
	case RocketCelebrate:
		art = rocketCelebrate
		fg = theme.NovaCyan
	default:
		art = rocketIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
