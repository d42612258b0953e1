package player

// RocketIcon identifies a cosmetic rocket by its display glyph.
type RocketIcon string

const (
	RocketDefault RocketIcon = "🚀"
	RocketSpeed   RocketIcon = "⭐"
	RocketBlaster RocketIcon = "🛸"
)

// Rocket is a shop catalog entry. The equipped rocket grants its perk
// passively; perks never stack because only one rocket is equipped.
type Rocket struct {
	Icon RocketIcon
	Name string
	Cost int
	Perk string
}

// Rockets returns the static shop catalog in display order.
func Rockets() []Rocket {
	return []Rocket{
		{Icon: RocketDefault, Name: "Explorer", Cost: 0, Perk: "Standard Performance"},
		{Icon: RocketSpeed, Name: "Speed Star", Cost: 500, Perk: "+50% XP Boost"},
		{Icon: RocketBlaster, Name: "Mega Blaster", Cost: 1000, Perk: "2x Coin Earnings"},
	}
}

// RocketByIcon looks up a catalog entry.
func RocketByIcon(icon RocketIcon) (Rocket, bool) {
	for _, r := range Rockets() {
		if r.Icon == icon {
			return r, true
		}
	}
	return Rocket{}, false
}

// EquipRocket equips an owned rocket. Returns false if not owned.
func (s *State) EquipRocket(icon RocketIcon) bool {
	if !s.OwnsRocket(icon) {
		return false
	}
	s.EquippedRocket = icon
	return true
}

// BuyRocket purchases a catalog rocket and auto-equips it. Already-owned
// rockets are just equipped. Returns false when unaffordable.
func (s *State) BuyRocket(icon RocketIcon) bool {
	if s.OwnsRocket(icon) {
		return s.EquipRocket(icon)
	}
	r, ok := RocketByIcon(icon)
	if !ok {
		return false
	}
	if !s.SpendCoins(r.Cost) {
		return false
	}
	s.OwnedRockets = append(s.OwnedRockets, icon)
	s.EquippedRocket = icon
	return true
}

// BuyPowerUp purchases one unit of the kind at the given cost.
func (s *State) BuyPowerUp(kind PowerUpKind, cost int) bool {
	if !s.SpendCoins(cost) {
		return false
	}
	s.AddPowerUp(kind)
	return true
}

// PowerUpCost returns the shop price for the kind.
func PowerUpCost(kind PowerUpKind) int {
	switch kind {
	case PowerUpHint:
		return 50
	case PowerUpTimeFreeze:
		return 75
	}
	return 0
}
