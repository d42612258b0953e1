package quiz

// Difficulty identifies a game mode.
type Difficulty string

const (
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	Survival Difficulty = "survival"
)

// AllDifficulties returns the selectable modes in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Survival}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard, Survival:
		return true
	}
	return false
}

// Settings is the static per-mode configuration.
type Settings struct {
	// Name is the mode's display name.
	Name string

	// Time is the per-question countdown in seconds. 0 means untimed.
	Time int

	// Questions is the number of questions in a full game.
	// 0 means unbounded (survival runs until lives are gone).
	Questions int

	// XPMultiplier scales XP earned per correct answer.
	XPMultiplier int

	// Lives is the number of wrong answers allowed. 0 means unlimited.
	Lives int
}

// Settings returns the configuration for the mode.
func (d Difficulty) Settings() Settings {
	switch d {
	case Easy:
		return Settings{Name: "Rookie", Time: 0, Questions: 10, XPMultiplier: 1, Lives: 0}
	case Medium:
		return Settings{Name: "Pilot", Time: 15, Questions: 15, XPMultiplier: 2, Lives: 3}
	case Hard:
		return Settings{Name: "Commander", Time: 10, Questions: 20, XPMultiplier: 3, Lives: 3}
	case Survival:
		return Settings{Name: "Survival", Time: 10, Questions: 0, XPMultiplier: 5, Lives: 1}
	default:
		return Settings{Name: string(d)}
	}
}

// DisplayName returns a human-readable label for the mode.
func (d Difficulty) DisplayName() string {
	return d.Settings().Name
}

// Timed reports whether the mode runs a per-question countdown.
func (d Difficulty) Timed() bool {
	return d.Settings().Time > 0
}

// Endless reports whether the mode has no fixed question count.
func (d Difficulty) Endless() bool {
	return d.Settings().Questions == 0
}
