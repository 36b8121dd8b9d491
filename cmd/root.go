package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mEdHaT33/Arkan/internal/config"
)

// CheckCmd verifies the environment and that the backend answers at all.
// Useful before a deploy; it does not authenticate.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and backend reachability.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client := &http.Client{Timeout: cfg.RemoteTimeout}
		req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, cfg.RemoteBaseURL, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("backend unreachable at %s: %w", cfg.RemoteBaseURL, err)
		}
		resp.Body.Close()

		fmt.Printf("backend %s answered with HTTP %d\n", cfg.RemoteBaseURL, resp.StatusCode)
		os.Exit(0)
		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "arkan",
		Short: "Arkan print shop console",
	}
	rootCmd.AddCommand(CheckCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
