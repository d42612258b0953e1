package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mathquest/internal/app"
	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/daily"
	"github.com/abhisek/mathquest/internal/native"
	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/screens/game"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the profile, and launches the TUI. When
// difficulty is non-empty the game screen is pushed immediately on top of
// mission control.
func runApp(cmd *cobra.Command, difficulty, code string) error {
	ctx := context.Background()
	cfg := config.Load()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	players := st.PlayerRepo()
	profile, err := players.Load(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile.Name == "" {
		profile.Name = cfg.PlayerName
	}

	// Roll fresh daily missions on the first launch of the day.
	if daily.Refresh(profile, time.Now(), rng.NewAmbient()) {
		if err := players.Save(ctx, profile); err != nil {
			fmt.Fprintln(os.Stderr, "save profile:", err)
		}
	}

	opts := app.Options{
		Profile: profile,
		Store:   st,
		Config:  cfg,
		Audio:   native.NewAudio(os.Stdout, cfg.SoundEnabled),
		Ads:     native.NewAds(cfg.AdsEnabled),
	}
	if difficulty != "" {
		opts.Initial = game.New(profile, st, cfg, opts.Audio, opts.Ads, parseDifficulty(difficulty), code)
	}

	return app.Run(opts)
}
