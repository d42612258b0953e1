package player

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Coins != 150 || s.Level != 1 || s.XP != 0 {
		t.Errorf("fresh state balances = coins %d level %d xp %d", s.Coins, s.Level, s.XP)
	}
	if s.EquippedRocket != RocketDefault || !s.OwnsRocket(RocketDefault) {
		t.Error("fresh state must own and equip the default rocket")
	}
	if s.PowerUps.Hint != 3 || s.PowerUps.TimeFreeze != 2 {
		t.Errorf("fresh power-ups = %+v", s.PowerUps)
	}
	if s.DailyStreak != 1 {
		t.Errorf("fresh daily streak = %d", s.DailyStreak)
	}
}

func TestNormalizeRepairsOldSaves(t *testing.T) {
	s := &State{Name: "Ada", Coins: 300}
	s.Normalize()

	if s.Level != 1 {
		t.Errorf("Level = %d, want 1", s.Level)
	}
	if !s.OwnsRocket(RocketDefault) || s.EquippedRocket != RocketDefault {
		t.Error("default rocket not restored")
	}
	if s.DailyStreak != 1 {
		t.Errorf("DailyStreak = %d, want 1", s.DailyStreak)
	}

	// Equipped-but-not-owned falls back to default.
	s = &State{EquippedRocket: RocketBlaster, OwnedRockets: []RocketIcon{RocketDefault}}
	s.Normalize()
	if s.EquippedRocket != RocketDefault {
		t.Errorf("EquippedRocket = %s, want default", s.EquippedRocket)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	s := NewState()
	if !s.UnlockAchievement(AchFirstWin) {
		t.Fatal("first unlock should succeed")
	}
	coins := s.Coins
	if coins != 150+50 {
		t.Errorf("coins after unlock = %d, want 200", coins)
	}

	if s.UnlockAchievement(AchFirstWin) {
		t.Error("second unlock should be a no-op")
	}
	if s.Coins != coins || len(s.Achievements) != 1 {
		t.Errorf("repeat unlock changed state: coins %d achievements %d", s.Coins, len(s.Achievements))
	}
}

func TestUnlockUnknownID(t *testing.T) {
	s := NewState()
	if s.UnlockAchievement("no_such_achievement") {
		t.Error("unknown id must not unlock")
	}
	if len(s.Achievements) != 0 {
		t.Error("unknown id must not be recorded")
	}
}

func TestSpendCoinsGuard(t *testing.T) {
	s := NewState()
	if s.SpendCoins(151) {
		t.Error("overspend allowed")
	}
	if s.Coins != 150 {
		t.Errorf("failed spend mutated coins: %d", s.Coins)
	}
	if !s.SpendCoins(150) || s.Coins != 0 {
		t.Errorf("exact spend failed, coins = %d", s.Coins)
	}
	if s.SpendCoins(-5) {
		t.Error("negative spend allowed")
	}
}

func TestAddXPLevelUpCarry(t *testing.T) {
	s := NewState()

	if levels := s.AddXP(50); levels != 0 || s.Level != 1 || s.XP != 50 {
		t.Errorf("after +50: levels %d level %d xp %d", levels, s.Level, s.XP)
	}

	// 50 + 60 = 110 crosses the level-1 threshold of 100.
	if levels := s.AddXP(60); levels != 1 || s.Level != 2 || s.XP != 10 {
		t.Errorf("after +60: levels %d level %d xp %d", levels, s.Level, s.XP)
	}

	// A huge grant rolls through several levels in one call.
	s = NewState()
	levels := s.AddXP(1000)
	// 1000 = 100 + 200 + 300 + 400, landing exactly on level 5 with 0 xp.
	if levels != 4 || s.Level != 5 || s.XP != 0 {
		t.Errorf("after +1000: levels %d level %d xp %d", levels, s.Level, s.XP)
	}

	if s.XP >= s.Level*100 {
		t.Errorf("invariant broken: xp %d >= level %d * 100", s.XP, s.Level)
	}
}

func TestBuyRocketFlow(t *testing.T) {
	s := NewState()
	s.Coins = 600

	if s.BuyRocket(RocketBlaster) {
		t.Error("unaffordable rocket purchased")
	}
	if s.Coins != 600 {
		t.Errorf("failed purchase mutated coins: %d", s.Coins)
	}

	if !s.BuyRocket(RocketSpeed) {
		t.Fatal("affordable purchase failed")
	}
	if s.Coins != 100 || !s.OwnsRocket(RocketSpeed) || s.EquippedRocket != RocketSpeed {
		t.Errorf("after purchase: coins %d owned %v equipped %s", s.Coins, s.OwnedRockets, s.EquippedRocket)
	}

	// Buying an owned rocket just re-equips, no charge.
	if !s.EquipRocket(RocketDefault) {
		t.Fatal("equip owned failed")
	}
	if !s.BuyRocket(RocketSpeed) || s.Coins != 100 {
		t.Errorf("re-buy charged coins: %d", s.Coins)
	}

	if s.EquipRocket(RocketBlaster) {
		t.Error("equipped a rocket the player does not own")
	}
}

func TestPowerUps(t *testing.T) {
	s := NewState()

	for i := 0; i < 3; i++ {
		if !s.UsePowerUp(PowerUpHint) {
			t.Fatalf("hint use %d failed", i)
		}
	}
	if s.UsePowerUp(PowerUpHint) {
		t.Error("used a hint with none held")
	}

	s.Coins = 50
	if !s.BuyPowerUp(PowerUpHint, PowerUpCost(PowerUpHint)) {
		t.Fatal("affordable power-up purchase failed")
	}
	if s.Coins != 0 || s.PowerUps.Hint != 1 {
		t.Errorf("after purchase: coins %d hints %d", s.Coins, s.PowerUps.Hint)
	}
	if s.BuyPowerUp(PowerUpTimeFreeze, PowerUpCost(PowerUpTimeFreeze)) {
		t.Error("unaffordable power-up purchased")
	}
}

func TestCatalogLookups(t *testing.T) {
	if len(Rockets()) != 3 {
		t.Errorf("rocket catalog size = %d, want 3", len(Rockets()))
	}
	for _, r := range Rockets() {
		got, ok := RocketByIcon(r.Icon)
		if !ok || got.Name != r.Name {
			t.Errorf("RocketByIcon(%s) = %+v, %v", r.Icon, got, ok)
		}
	}

	seen := make(map[AchievementID]bool)
	for _, a := range Achievements() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %s", a.ID)
		}
		seen[a.ID] = true
		if a.Reward <= 0 {
			t.Errorf("achievement %s has non-positive reward", a.ID)
		}
	}
}
