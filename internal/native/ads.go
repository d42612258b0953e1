package native

// RewardVideoCoins is the payout for sitting through a reward video.
const RewardVideoCoins = 50

// Ads abstracts the ad provider. The terminal build simulates it; a mobile
// build would bridge to a real SDK.
type Ads interface {
	// ShowInterstitial displays a between-games ad. Always resolves.
	ShowInterstitial()
	// ShowRewardVideo offers a reward video and reports whether the player
	// watched it to the end.
	ShowRewardVideo() bool
}

// NewAds returns the simulated provider when enabled, otherwise one that
// never shows anything.
func NewAds(enabled bool) Ads {
	if !enabled {
		return disabledAds{}
	}
	return simulatedAds{}
}

// simulatedAds pretends every ad plays through. There is nothing to watch
// in a terminal, so the reward is effectively free.
type simulatedAds struct{}

func (simulatedAds) ShowInterstitial()     {}
func (simulatedAds) ShowRewardVideo() bool { return true }

type disabledAds struct{}

func (disabledAds) ShowInterstitial()     {}
func (disabledAds) ShowRewardVideo() bool { return false }
