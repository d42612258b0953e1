package game

import "time"

// tickMsg is sent every second to advance the countdown.
type tickMsg time.Time

// waveAdvanceMsg ends the wave-transition pause and starts the next wave.
type waveAdvanceMsg struct{}
