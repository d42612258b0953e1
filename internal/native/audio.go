// Package native holds the terminal-side stand-ins for the platform
// services a mobile build would provide: sound effects, ad offers and
// score sharing.
package native

import (
	"io"

	"github.com/abhisek/mathquest/internal/quiz"
)

// Effect is a short sound cue tied to a game event.
type Effect string

const (
	EffectClick   Effect = "click"
	EffectCorrect Effect = "correct"
	EffectWrong   Effect = "wrong"
	EffectLevelUp Effect = "levelUp"
	EffectPowerUp Effect = "powerUp"
)

// Audio plays sound effects and background music. Implementations must be
// safe to call from the update loop; playback never blocks.
type Audio interface {
	Play(effect Effect)
	StartMusic(diff quiz.Difficulty)
	StopMusic()
}

// NewAudio returns a bell-based Audio when enabled, otherwise a silent one.
func NewAudio(w io.Writer, enabled bool) Audio {
	if !enabled {
		return silentAudio{}
	}
	return &bellAudio{w: w}
}

// bellAudio is as much audio as a terminal offers: the BEL character.
// Music is a no-op; the terminal has no channel for it.
type bellAudio struct {
	w io.Writer
}

func (a *bellAudio) Play(Effect) {
	io.WriteString(a.w, "\a")
}

func (a *bellAudio) StartMusic(quiz.Difficulty) {}
func (a *bellAudio) StopMusic()                 {}

type silentAudio struct{}

func (silentAudio) Play(Effect)                {}
func (silentAudio) StartMusic(quiz.Difficulty) {}
func (silentAudio) StopMusic()                 {}
