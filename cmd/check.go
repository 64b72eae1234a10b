package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured llm provider is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(cfg, logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := provider.Heartbeat(ctx); err != nil {
			if cfg.LLM.Provider == "ollama" {
				return fmt.Errorf("cannot connect to Ollama at %s: %w\n\nStart Ollama with: ollama serve",
					cfg.LLM.Ollama.Host, err)
			}
			return fmt.Errorf("LLM provider %s unavailable: %w", provider.Name(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s provider is reachable\n", provider.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
