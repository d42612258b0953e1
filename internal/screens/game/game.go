package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/quiz"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/summary"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// GameScreen runs one game from first question to summary.
type GameScreen struct {
	profile *player.State
	st      *store.Store
	cfg     config.Config
	audio   native.Audio
	ads     native.Ads

	sess  *session.State
	input components.TextInput

	lastResult *session.Result
	timedOut   bool
	hintText   string
	confirming bool
	finished   bool
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.EscHandler = (*GameScreen)(nil)

// New creates a GameScreen for the given mode. A non-empty challenge code
// seeds the question stream.
func New(p *player.State, st *store.Store, cfg config.Config, audio native.Audio, ads native.Ads, diff quiz.Difficulty, code string) *GameScreen {
	return &GameScreen{
		profile: p,
		st:      st,
		cfg:     cfg,
		audio:   audio,
		ads:     ads,
		sess:    session.New(diff, code),
		input:   components.NewTextInput("Answer...", true, 7),
	}
}

func (g *GameScreen) Init() tea.Cmd {
	g.audio.StartMusic(g.sess.Difficulty)
	return tea.Batch(g.input.Init(), tickCmd())
}

func (g *GameScreen) Title() string {
	if g.sess.Difficulty.Endless() {
		return fmt.Sprintf("Survival · Wave %d", g.sess.Wave)
	}
	return g.sess.Difficulty.DisplayName()
}

// HandlesEsc keeps the app from popping a live game; Esc opens the quit
// confirmation instead.
func (g *GameScreen) HandlesEsc() bool {
	return true
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon mission"},
			{Key: "N", Description: "Keep flying"},
		}
	}
	switch g.sess.Phase {
	case session.PhaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case session.PhaseWaveTransition:
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "H", Description: "Hint"},
	}
	if g.sess.Difficulty.Timed() {
		hints = append(hints,
			layout.KeyHint{Key: "F", Description: "Freeze"},
			layout.KeyHint{Key: "P", Description: "Pause"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return g.handleTick()
	case waveAdvanceMsg:
		return g.handleWaveAdvance()
	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.sess.Phase == session.PhaseActive && !g.confirming {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GameScreen) handleTick() (screen.Screen, tea.Cmd) {
	if g.finished {
		return g, nil
	}
	if g.confirming {
		// Countdown holds while the quit dialog is up.
		return g, tickCmd()
	}
	if tick := g.sess.Tick(); tick.TimedOut {
		g.timedOut = true
		return g, tea.Batch(g.submit(session.TimeoutAnswer), tickCmd())
	}
	return g, tickCmd()
}

func (g *GameScreen) handleWaveAdvance() (screen.Screen, tea.Cmd) {
	if g.finished || g.sess.Phase != session.PhaseWaveTransition {
		return g, nil
	}
	g.sess.AdvanceWave()
	g.resetForNextQuestion()
	return g, g.input.Init()
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.confirming {
		switch key {
		case "y", "Y":
			g.confirming = false
			return g, g.finish()
		case "n", "N", "esc":
			g.confirming = false
		}
		return g, nil
	}

	switch g.sess.Phase {
	case session.PhaseFeedback:
		// Any key dismisses feedback.
		g.sess.NextQuestion()
		g.resetForNextQuestion()
		return g, g.input.Init()

	case session.PhaseWaveTransition, session.PhaseComplete:
		return g, nil
	}

	switch key {
	case "esc":
		g.confirming = true
		return g, nil
	case "enter":
		answer := strings.TrimSpace(g.input.Value())
		if answer == "" {
			return g, nil
		}
		return g, g.submit(answer)
	case "h":
		if answer, ok := g.sess.UseHint(g.profile); ok {
			g.audio.Play(native.EffectPowerUp)
			g.hintText = fmt.Sprintf("Hint: the answer is %d", answer)
		}
		return g, nil
	case "f":
		if g.sess.UseTimeFreeze(g.profile) {
			g.audio.Play(native.EffectPowerUp)
		}
		return g, nil
	case "p":
		if g.sess.Paused {
			g.sess.Resume()
		} else {
			g.sess.Pause()
		}
		return g, nil
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

// submit scores the answer and routes to feedback, the next wave, or the
// end of the game.
func (g *GameScreen) submit(answer string) tea.Cmd {
	res := g.sess.Submit(answer, g.profile)
	g.lastResult = &res
	g.input.Submit(res.Correct)

	for _, s := range res.Outcome.Sounds {
		switch s {
		case progression.SoundCorrect:
			g.audio.Play(native.EffectCorrect)
		case progression.SoundWrong:
			g.audio.Play(native.EffectWrong)
		case progression.SoundLevelUp:
			g.audio.Play(native.EffectLevelUp)
		}
	}

	if res.GameOver {
		return g.finish()
	}
	if res.WaveComplete {
		return tea.Tick(session.WaveTransitionDelay, func(time.Time) tea.Msg {
			return waveAdvanceMsg{}
		})
	}
	return nil
}

func (g *GameScreen) resetForNextQuestion() {
	g.input = components.NewTextInput("Answer...", true, 7)
	g.lastResult = nil
	g.timedOut = false
	g.hintText = ""
}

// finish runs the end-of-game flow exactly once: finalize the session,
// persist the profile and result, show an interstitial, then hand off to
// the summary screen.
func (g *GameScreen) finish() tea.Cmd {
	if g.finished {
		return nil
	}
	g.finished = true
	g.audio.StopMusic()

	sess := g.sess
	profile := g.profile
	return func() tea.Msg {
		sum := sess.Finalize(profile, time.Now())

		ctx := context.Background()
		_ = g.st.ResultRepo().Insert(ctx, store.GameResult{
			Difficulty:    sess.Difficulty,
			Score:         sum.Score,
			Questions:     sum.Attempts,
			Correct:       sum.QuestionsAnswered,
			MaxWave:       sum.MaxWave,
			Duration:      sum.Duration,
			ChallengeCode: sess.ChallengeCode,
		})
		repo := g.st.PlayerRepo()
		_ = repo.Save(ctx, profile)
		_ = repo.Prune(ctx, g.cfg.SnapshotKeep)

		g.ads.ShowInterstitial()

		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, sess.Difficulty, sess.ChallengeCode, profile, g.cfg, g.audio),
		}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
