package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/be1500616/zergoqrf/internal/auth/workers/cleanup"
	"github.com/be1500616/zergoqrf/internal/platform/config"
)

// NewSessionsCmd groups guest session maintenance commands.
func NewSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain anonymous guest sessions",
	}
	cmd.AddCommand(newSessionsCleanupCmd())
	return cmd
}

func newSessionsCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired and invalidated guest sessions once",
		Long: `Run a single cleanup pass, the same one the server's background worker
runs on SESSION_CLEANUP_INTERVAL. Expired token revocations are purged too
when the backend keeps them in Postgres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromEnv()
			log := newLogger(cmd, cfg)

			st, err := openStores(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer st.close()

			opts := []cleanup.Option{cleanup.WithLogger(log)}
			if purger, ok := st.revocations.(cleanup.RevocationPurger); ok {
				opts = append(opts, cleanup.WithRevocationPurger(purger))
			}
			res, err := cleanup.New(st.sessions, opts...).RunOnce(ctx)
			if err != nil {
				return fmt.Errorf("cleanup sessions: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"deleted":     res.Deleted,
					"purged":      res.Purged,
					"duration_ms": res.Duration.Milliseconds(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d sessions, purged %d revocations\n", res.Deleted, res.Purged)
			return nil
		},
	}
}
