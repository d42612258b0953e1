// Package player holds the persistent player model: currency, progression,
// achievements, cosmetics and power-ups. All mutation goes through methods
// that guard invariants (no negative balances, xp always below the next
// level threshold, achievement set only grows).
package player

// PowerUpKind identifies a consumable power-up.
type PowerUpKind string

const (
	PowerUpHint       PowerUpKind = "hint"
	PowerUpTimeFreeze PowerUpKind = "timeFreeze"
)

// PowerUps tracks how many of each consumable the player holds.
type PowerUps struct {
	Hint       int `json:"hint"`
	TimeFreeze int `json:"timeFreeze"`
}

// Count returns the held count for the kind.
func (p PowerUps) Count(kind PowerUpKind) int {
	switch kind {
	case PowerUpHint:
		return p.Hint
	case PowerUpTimeFreeze:
		return p.TimeFreeze
	}
	return 0
}

// ChallengeType classifies a daily challenge objective.
type ChallengeType string

const (
	ChallengeTotalScore   ChallengeType = "total_score"
	ChallengeHighStreak   ChallengeType = "high_streak"
	ChallengeTotalAnswers ChallengeType = "total_answers"
)

// DailyChallenge is one per-day objective with progress and a one-time claim.
type DailyChallenge struct {
	ID          string        `json:"id"`
	Type        ChallengeType `json:"type"`
	Description string        `json:"description"`
	Target      int           `json:"target"`
	Current     int           `json:"current"`
	Reward      int           `json:"reward"`
	Completed   bool          `json:"completed"`
	Claimed     bool          `json:"claimed"`
}

// State is the persistent player record. The JSON shape is the persisted
// save format; absent fields default on load (see Normalize).
type State struct {
	Name           string          `json:"name"`
	Coins          int             `json:"coins"`
	Level          int             `json:"level"`
	XP             int             `json:"xp"`
	TotalScore     int             `json:"totalScore"`
	Achievements   []AchievementID `json:"achievements"`
	EquippedRocket RocketIcon      `json:"equippedRocket"`
	OwnedRockets   []RocketIcon    `json:"ownedRockets"`
	PowerUps       PowerUps        `json:"powerUps"`
	LastRewardDate string          `json:"lastRewardDate,omitempty"`
	DailyStreak    int             `json:"dailyStreak"`

	DailyChallenges   []DailyChallenge `json:"dailyChallenges,omitempty"`
	LastChallengeDate string           `json:"lastChallengeDate,omitempty"`
}

// NewState returns a fresh player with starting balances.
func NewState() *State {
	return &State{
		Coins:          150,
		Level:          1,
		EquippedRocket: RocketDefault,
		OwnedRockets:   []RocketIcon{RocketDefault},
		PowerUps:       PowerUps{Hint: 3, TimeFreeze: 2},
		DailyStreak:    1,
	}
}

// Normalize repairs a state loaded from an older or partial save.
// Missing fields get defaults; it never fails.
func (s *State) Normalize() {
	if s.Level < 1 {
		s.Level = 1
	}
	if s.Coins < 0 {
		s.Coins = 0
	}
	if s.XP < 0 {
		s.XP = 0
	}
	if len(s.OwnedRockets) == 0 {
		s.OwnedRockets = []RocketIcon{RocketDefault}
	}
	if !s.OwnsRocket(s.EquippedRocket) {
		s.EquippedRocket = RocketDefault
		if !s.OwnsRocket(RocketDefault) {
			s.OwnedRockets = append(s.OwnedRockets, RocketDefault)
		}
	}
	if s.DailyStreak < 1 {
		s.DailyStreak = 1
	}
}

// HasAchievement reports whether the id is already unlocked.
func (s *State) HasAchievement(id AchievementID) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// UnlockAchievement adds the id and grants its reward coins in one step.
// Unlocking an already-held id is a no-op; returns true only on a new unlock.
func (s *State) UnlockAchievement(id AchievementID) bool {
	if s.HasAchievement(id) {
		return false
	}
	ach, ok := AchievementByID(id)
	if !ok {
		return false
	}
	s.Achievements = append(s.Achievements, id)
	s.Coins += ach.Reward
	return true
}

// OwnsRocket reports whether the icon is in the owned set.
func (s *State) OwnsRocket(icon RocketIcon) bool {
	for _, r := range s.OwnedRockets {
		if r == icon {
			return true
		}
	}
	return false
}

// AddCoins credits coins. Negative amounts are ignored.
func (s *State) AddCoins(n int) {
	if n > 0 {
		s.Coins += n
	}
}

// SpendCoins debits coins if affordable, returning false otherwise.
// The guard runs before any mutation so a failed spend changes nothing.
func (s *State) SpendCoins(n int) bool {
	if n < 0 || s.Coins < n {
		return false
	}
	s.Coins -= n
	return true
}

// AddXP credits xp and rolls overflow into level-ups. Returns the number of
// levels gained. After return, XP < Level*100 always holds.
func (s *State) AddXP(n int) int {
	if n <= 0 {
		return 0
	}
	s.XP += n
	levels := 0
	for s.XP >= s.Level*100 {
		s.XP -= s.Level * 100
		s.Level++
		levels++
	}
	return levels
}

// UsePowerUp consumes one unit of the kind, returning false when none held.
func (s *State) UsePowerUp(kind PowerUpKind) bool {
	switch kind {
	case PowerUpHint:
		if s.PowerUps.Hint <= 0 {
			return false
		}
		s.PowerUps.Hint--
	case PowerUpTimeFreeze:
		if s.PowerUps.TimeFreeze <= 0 {
			return false
		}
		s.PowerUps.TimeFreeze--
	default:
		return false
	}
	return true
}

// AddPowerUp credits one unit of the kind.
func (s *State) AddPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpHint:
		s.PowerUps.Hint++
	case PowerUpTimeFreeze:
		s.PowerUps.TimeFreeze++
	}
}
