// Package rng provides the random sources that drive question generation.
//
// Two sources exist: an ambient source for normal play, and a string-seeded
// deterministic source for challenge codes. The seeded stream must be
// bit-exact across devices — two players sharing a code have to see the
// identical question sequence — so the algorithm (a 31-multiplier string
// hash feeding Mulberry32) is fixed and covered by golden tests.
package rng

import (
	"math/rand/v2"
	"unicode/utf16"
)

// Source produces floats in [0, 1). Draws never block and never fail.
type Source func() float64

// mulberryIncrement is the fixed odd constant added to the state each draw.
const mulberryIncrement uint32 = 0x6D2B79F5

// NewSeeded returns a deterministic Source for the given challenge code.
// The same seed always yields the same infinite stream.
func NewSeeded(seed string) Source {
	state := hashSeed(seed)
	return func() float64 {
		state += mulberryIncrement
		t := state
		t = (t ^ t>>15) * (t | 1)
		t ^= t + (t^t>>7)*(t|61)
		return float64(t^t>>14) / 4294967296.0
	}
}

// NewAmbient returns a non-deterministic Source for normal (uncoded) play.
func NewAmbient() Source {
	return rand.Float64
}

// hashSeed folds the seed string into 32 bits: hash = hash*31 + codeUnit,
// wrapping at 32-bit signed boundaries. Folding over UTF-16 code units keeps
// the stream identical for seeds typed on any client.
func hashSeed(seed string) uint32 {
	var h int32
	for _, u := range utf16.Encode([]rune(seed)) {
		h = h*31 + int32(u)
	}
	return uint32(h)
}

// IntBetween draws a uniform integer in [min, max], inclusive on both ends.
func (s Source) IntBetween(min, max int) int {
	return int(s()*float64(max-min+1)) + min
}

// Pick returns a uniformly chosen element of choices.
func Pick[T any](s Source, choices []T) T {
	return choices[s.IntBetween(0, len(choices)-1)]
}
