package cmd

import (
	"strings"

	"github.com/abhisek/mathquest/internal/quiz"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, _ := cmd.Flags().GetString("difficulty")
		code, _ := cmd.Flags().GetString("challenge")
		return runApp(cmd, diff, code)
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "easy", "Game mode: easy, medium, hard, survival")
	playCmd.Flags().StringP("challenge", "c", "", "Challenge code — replays a friend's exact question stream")
}

// parseDifficulty maps a flag value onto a known mode, defaulting to easy
// rather than erroring so a typo still starts a game.
func parseDifficulty(s string) quiz.Difficulty {
	d := quiz.Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d
	}
	return quiz.Easy
}
