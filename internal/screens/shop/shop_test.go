package shop

import (
	"io"
	"strings"
	"testing"

	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/store"
)

func newTestShop(t *testing.T, p *player.State) *ShopScreen {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(p, st, native.NewAudio(io.Discard, false))
}

func TestBuyLastRocketUnlocksCollection(t *testing.T) {
	p := player.NewState()
	p.Coins = 2000
	s := newTestShop(t, p)

	// Catalog order: Explorer (owned by default), Speed Star, Mega Blaster.
	s.buy(s.items[1])
	if p.HasAchievement(player.AchCollector) {
		t.Fatal("collector unlocked before the catalog was complete")
	}

	coinsBefore := p.Coins
	s.buy(s.items[2])

	if !p.HasAchievement(player.AchCollector) {
		t.Error("collector still locked after owning the full catalog")
	}
	ach, _ := player.AchievementByID(player.AchCollector)
	if want := coinsBefore - 1000 + ach.Reward; p.Coins != want {
		t.Errorf("coins = %d, want %d (purchase minus cost plus unlock reward)", p.Coins, want)
	}
	if !strings.Contains(s.notice, ach.Name) {
		t.Errorf("notice %q does not announce the unlock", s.notice)
	}
}

func TestBuyRocketUnaffordable(t *testing.T) {
	p := player.NewState()
	p.Coins = 10
	s := newTestShop(t, p)

	s.buy(s.items[1])
	if p.OwnsRocket(player.RocketSpeed) {
		t.Error("unaffordable rocket was sold")
	}
	if s.notice != "Not enough coins!" {
		t.Errorf("notice = %q", s.notice)
	}
}
