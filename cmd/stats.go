package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/abhisek/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-mode play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.ResultRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No games played yet. Run `mathquest` to start one.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODE\tGAMES\tBEST SCORE\tBEST WAVE\tCORRECT")
		for _, s := range stats {
			wave := "-"
			if s.Difficulty.Endless() {
				wave = fmt.Sprintf("%d", s.BestWave)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d/%d\n",
				s.Difficulty.DisplayName(), s.Games, s.BestScore, wave,
				s.Correct, s.Questions)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		recent, err := st.ResultRepo().Recent(ctx, store.ResultFilter{Limit: 10})
		if err != nil {
			return fmt.Errorf("load recent games: %w", err)
		}
		fmt.Println("\nRECENT GAMES")
		w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLAYED\tMODE\tSCORE\tCORRECT\tTIME")
		for _, g := range recent {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d\t%d:%02d\n",
				g.PlayedAt.Local().Format("2006-01-02 15:04"),
				g.Difficulty.DisplayName(), g.Score, g.Correct, g.Questions,
				int(g.Duration.Minutes()), int(g.Duration.Seconds())%60)
		}
		return w.Flush()
	},
}
