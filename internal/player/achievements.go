package player

// AchievementID identifies an achievement. IDs are persisted in saves, so
// keep them stable.
type AchievementID string

const (
	AchFirstWin    AchievementID = "first_win"
	AchStreak10    AchievementID = "streak_10"
	AchStreak25    AchievementID = "streak_25"
	AchStreak50    AchievementID = "streak_50"
	AchStreak100   AchievementID = "streak_100"
	AchCombo10     AchievementID = "combo_10"
	AchCombo20     AchievementID = "combo_20"
	AchLevel5      AchievementID = "level_5"
	AchLevel10     AchievementID = "level_10"
	AchLevel20     AchievementID = "level_20"
	AchLevel50     AchievementID = "level_50"
	AchScore5000   AchievementID = "score_5000"
	AchScore10000  AchievementID = "score_10000"
	AchScore50000  AchievementID = "score_50000"
	AchScore100000 AchievementID = "score_100000"
	AchGame5000    AchievementID = "game_5000"
	AchCoin1000    AchievementID = "coin_1000"
	AchCoin2000    AchievementID = "coin_2000"
	AchCoin5000    AchievementID = "coin_5000"
	AchWave5       AchievementID = "wave_5"
	AchWave10      AchievementID = "wave_10"
	AchWave20      AchievementID = "wave_20"
	AchWave30      AchievementID = "wave_30"
	AchSpeedDemon  AchievementID = "speed_demon"
	AchPerfectGame AchievementID = "perfect_game"
	AchCollector   AchievementID = "collector"
	AchDaily3      AchievementID = "daily_3"
	AchDaily7      AchievementID = "daily_7"
)

// Achievement is a static catalog entry. Unlocking grants Reward coins once.
type Achievement struct {
	ID     AchievementID
	Name   string
	Icon   string
	Reward int
}

// Achievements returns the static catalog in display order.
func Achievements() []Achievement {
	return []Achievement{
		{AchFirstWin, "First Victory", "🎯", 50},
		{AchStreak10, "Streak Master", "🔥", 200},
		{AchStreak25, "On Fire", "🔥", 350},
		{AchStreak50, "Unstoppable", "🔥", 500},
		{AchStreak100, "Centurion", "🔥", 1000},
		{AchCombo10, "Combo King", "👑", 150},
		{AchCombo20, "Combo Emperor", "👑", 300},
		{AchLevel5, "High Flyer", "🦅", 300},
		{AchLevel10, "Ace Pilot", "🦅", 500},
		{AchLevel20, "Star Voyager", "🦅", 800},
		{AchLevel50, "Galactic Legend", "🦅", 1500},
		{AchScore5000, "Brainiac", "🧠", 400},
		{AchScore10000, "Mastermind", "🧠", 600},
		{AchScore50000, "Genius", "🧠", 1200},
		{AchScore100000, "Beyond Genius", "🧠", 2000},
		{AchGame5000, "One Giant Leap", "💫", 500},
		{AchCoin1000, "Treasure Hunter", "💎", 250},
		{AchCoin2000, "Gold Rush", "💎", 400},
		{AchCoin5000, "Space Tycoon", "💎", 700},
		{AchWave5, "Wave Rider", "🌊", 200},
		{AchWave10, "Storm Chaser", "🌊", 400},
		{AchWave20, "Tsunami Tamer", "🌊", 800},
		{AchWave30, "Eye of the Storm", "🌊", 1200},
		{AchSpeedDemon, "Speed Demon", "⚡", 100},
		{AchPerfectGame, "Perfect Game", "💯", 150},
		{AchCollector, "Fleet Commander", "🛸", 300},
		{AchDaily3, "Regular", "📅", 100},
		{AchDaily7, "Devoted", "📅", 250},
	}
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id AchievementID) (Achievement, bool) {
	for _, a := range Achievements() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
