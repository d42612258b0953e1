package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all progress and game history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes your profile, coins, rockets, and history. Type 'yes' to confirm: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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

		if err := st.PlayerRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		if err := st.ResultRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset results: %w", err)
		}
		fmt.Println("All progress wiped. Fresh launch pad awaits.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
