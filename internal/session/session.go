// Package session drives a single game: question sequencing, the countdown,
// survival waves, lives and completion. The state is an explicit struct
// mutated through its methods; every operation takes the player state it
// needs and returns what happened, leaving presentation (sounds, toasts,
// timer scheduling) to the caller.
package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/daily"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/quiz"
	"github.com/abhisek/mathquest/internal/rng"
)

// QuestionsPerWave is the length of one survival wave.
const QuestionsPerWave = 5

// TimeoutAnswer is the sentinel the countdown submits on expiry. It can
// never match a generated answer, so it always scores as wrong.
const TimeoutAnswer = "-999999"

// FreezeTicks is how many countdown ticks a time-freeze power-up absorbs.
const FreezeTicks = 10

// WaveTransitionDelay is how long the wave overlay shows before the next
// wave's first question appears.
const WaveTransitionDelay = 3 * time.Second

// Phase is the session's current position in its lifecycle.
type Phase int

const (
	PhaseActive         Phase = iota // question on screen, countdown running
	PhaseFeedback                    // showing answer feedback
	PhaseWaveTransition              // survival wave overlay, generation frozen
	PhaseComplete                    // game over, awaiting Finalize
)

// State is the ephemeral per-game state. Create with New, discard after
// Finalize.
type State struct {
	ID            string
	Difficulty    quiz.Difficulty
	ChallengeCode string
	StartTime     time.Time

	Score  int
	Streak int
	Combo  int

	// QuestionsAnswered counts correct answers; only those advance progress.
	// Attempts counts every evaluated submission, timeouts included.
	QuestionsAnswered int
	Attempts          int

	Wave int

	// Lives remaining. Only meaningful when the mode has finite lives.
	Lives int

	// TimeLeft is the countdown in seconds. Untracked for untimed modes.
	TimeLeft int

	// FrozenTicks counts remaining time-freeze ticks; while positive the
	// countdown holds its value.
	FrozenTicks int

	Paused bool
	Phase  Phase

	// Progress is the bar value in [0,100]. Standard modes fill toward the
	// question count; survival fills within the current wave.
	Progress float64

	CurrentQuestion quiz.Question

	src       rng.Source
	finalized bool
}

// New starts a game. A non-empty challengeCode seeds the question stream so
// two players with the same code replay identical questions; otherwise the
// ambient source is used.
func New(diff quiz.Difficulty, challengeCode string) *State {
	src := rng.NewAmbient()
	if challengeCode != "" {
		src = rng.NewSeeded(challengeCode)
	}

	s := &State{
		ID:            uuid.New().String(),
		Difficulty:    diff,
		ChallengeCode: challengeCode,
		StartTime:     time.Now(),
		Wave:          1,
		Lives:         diff.Settings().Lives,
		src:           src,
		Phase:         PhaseActive,
	}
	s.CurrentQuestion = quiz.Generate(diff, src, s.Wave)
	s.TimeLeft = s.questionTime()
	return s
}

// HasLives reports whether the mode tracks finite lives.
func (s *State) HasLives() bool {
	return s.Difficulty.Settings().Lives > 0
}

// questionTime returns the countdown for the current wave/mode. Survival
// tightens the timer as waves climb, floored at 3 seconds.
func (s *State) questionTime() int {
	settings := s.Difficulty.Settings()
	if s.Difficulty != quiz.Survival {
		return settings.Time
	}
	t := settings.Time - (s.Wave-1)/2
	if t < 3 {
		t = 3
	}
	return t
}

// Result reports what a Submit did.
type Result struct {
	Correct       bool
	CorrectAnswer int
	Outcome       progression.Outcome

	// WaveComplete is true when this answer closed a survival wave; the
	// session is now in PhaseWaveTransition until AdvanceWave.
	WaveComplete bool

	// GameOver is true when this answer finished the game (question count
	// reached, or last life lost). Call Finalize next.
	GameOver bool
}

// Submit evaluates an answer. Non-numeric input and the timeout sentinel
// score as wrong. The session must be in PhaseActive.
func (s *State) Submit(answer string, p *player.State) Result {
	if s.Phase != PhaseActive {
		return Result{}
	}

	s.Attempts++
	q := s.CurrentQuestion
	res := Result{CorrectAnswer: q.Answer}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	res.Correct = err == nil && parsed == float64(q.Answer)

	if res.Correct {
		out := progression.ApplyCorrect(progression.AnswerContext{
			Difficulty:     s.Difficulty,
			Streak:         s.Streak,
			Combo:          s.Combo,
			Wave:           s.Wave,
			GameScore:      s.Score,
			TimerRemaining: s.TimeLeft,
		}, p)
		s.Score += out.Points
		s.Streak = out.NewStreak
		s.Combo = out.NewCombo
		res.Outcome = out
		s.advance(&res)
		return res
	}

	res.Outcome = progression.ApplyWrong()
	s.Streak = 0
	s.Combo = 0
	if s.HasLives() {
		s.Lives--
		if s.Lives <= 0 {
			s.Phase = PhaseComplete
			res.GameOver = true
			return res
		}
	}
	// A miss never advances wave or question progress; the player just
	// gets a fresh question after feedback.
	s.Phase = PhaseFeedback
	return res
}

// advance applies the post-answer progress logic for a correct answer.
func (s *State) advance(res *Result) {
	s.QuestionsAnswered++

	if s.Difficulty.Endless() {
		inWave := s.QuestionsAnswered % QuestionsPerWave
		filled := inWave
		if filled == 0 {
			filled = QuestionsPerWave
		}
		s.Progress = float64(filled) / QuestionsPerWave * 100

		if inWave == 0 {
			s.Phase = PhaseWaveTransition
			res.WaveComplete = true
			return
		}
		s.Phase = PhaseFeedback
		return
	}

	total := s.Difficulty.Settings().Questions
	s.Progress = float64(s.QuestionsAnswered) / float64(total) * 100
	if s.QuestionsAnswered >= total {
		s.Phase = PhaseComplete
		res.GameOver = true
		return
	}
	s.Phase = PhaseFeedback
}

// NextQuestion leaves feedback, generates the next question for the current
// wave and restarts the countdown. Resetting TimeLeft supersedes whatever
// countdown was running; there is never more than one.
func (s *State) NextQuestion() {
	if s.Phase != PhaseFeedback {
		return
	}
	s.CurrentQuestion = quiz.Generate(s.Difficulty, s.src, s.Wave)
	s.TimeLeft = s.questionTime()
	s.FrozenTicks = 0
	s.Phase = PhaseActive
}

// AdvanceWave ends the wave transition: bumps the wave, generates the new
// wave's first question and resets the countdown to the wave-scaled value.
func (s *State) AdvanceWave() {
	if s.Phase != PhaseWaveTransition {
		return
	}
	s.Wave++
	s.Progress = 0
	s.CurrentQuestion = quiz.Generate(s.Difficulty, s.src, s.Wave)
	s.TimeLeft = s.questionTime()
	s.FrozenTicks = 0
	s.Phase = PhaseActive
}

// TickResult reports what one countdown tick did.
type TickResult struct {
	// TimedOut is true when the countdown expired; the caller should submit
	// TimeoutAnswer.
	TimedOut bool
}

// Tick advances the countdown by one second. It is inert while paused,
// frozen, untimed, or outside the active phase, so a stray timer can never
// double-charge the clock.
func (s *State) Tick() TickResult {
	if !s.Difficulty.Timed() || s.Paused || s.Phase != PhaseActive {
		return TickResult{}
	}
	if s.FrozenTicks > 0 {
		s.FrozenTicks--
		return TickResult{}
	}
	s.TimeLeft--
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		return TickResult{TimedOut: true}
	}
	return TickResult{}
}

// Pause suspends the countdown, keeping the remaining time.
func (s *State) Pause() { s.Paused = true }

// Resume restarts the countdown from where it stopped.
func (s *State) Resume() { s.Paused = false }

// UseHint consumes a hint power-up and reveals the answer.
func (s *State) UseHint(p *player.State) (int, bool) {
	if s.Phase != PhaseActive || !p.UsePowerUp(player.PowerUpHint) {
		return 0, false
	}
	return s.CurrentQuestion.Answer, true
}

// UseTimeFreeze consumes a time-freeze power-up, holding the countdown for
// FreezeTicks seconds. No-op for untimed modes.
func (s *State) UseTimeFreeze(p *player.State) bool {
	if s.Phase != PhaseActive || !s.Difficulty.Timed() {
		return false
	}
	if !p.UsePowerUp(player.PowerUpTimeFreeze) {
		return false
	}
	s.FrozenTicks = FreezeTicks
	return true
}

// Summary is the end-of-game record produced by Finalize.
type Summary struct {
	Score             int
	QuestionsAnswered int
	Attempts          int
	MaxWave           int
	Duration          time.Duration
	Unlocked          []player.Achievement
	DailyReward       daily.Reward
}

// Finalize runs the completion flow once: end-of-game achievements and the
// daily login reward. Safe to call repeatedly; only the first call applies.
func (s *State) Finalize(p *player.State, now time.Time) Summary {
	if s.finalized {
		return Summary{}
	}
	s.finalized = true
	s.Phase = PhaseComplete

	sum := Summary{
		Score:             s.Score,
		QuestionsAnswered: s.QuestionsAnswered,
		Attempts:          s.Attempts,
		MaxWave:           s.Wave,
		Duration:          now.Sub(s.StartTime),
	}

	comp := progression.ApplyCompletion(p, s.Difficulty, s.Streak)
	sum.Unlocked = comp.Unlocked

	reward, rewardUnlocks := daily.GrantReward(p, now)
	sum.DailyReward = reward
	sum.Unlocked = append(sum.Unlocked, rewardUnlocks...)

	return sum
}
