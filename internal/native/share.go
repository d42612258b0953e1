package native

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ScoreText formats a brag-worthy score message.
func ScoreText(playerName string, score int) string {
	return fmt.Sprintf("%s scored %d points in Math Quest! 🚀 Can you beat it?",
		playerName, score)
}

// ChallengeText formats an invitation carrying a challenge code. Anyone who
// enters the code plays the exact same questions.
func ChallengeText(playerName string, code string, score int) string {
	return fmt.Sprintf("%s challenges you to Math Quest! Beat %d points — enter code %s to play the same questions.",
		playerName, score, code)
}

// Share copies text to the system clipboard and reports whether it worked.
// Headless environments have no clipboard; callers should fall back to
// printing the text.
func Share(text string) bool {
	return clipboard.WriteAll(text) == nil
}
