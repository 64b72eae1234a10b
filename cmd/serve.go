package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/bimmerbailey/copygen/internal/generate"
	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/bimmerbailey/copygen/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serve copy generation over HTTP.

Routes:
  POST /generate-content  generate variations (JSON body)
  GET  /content-types     list content types
  GET  /healthz           liveness

Missing provider settings do not stop the server; each generation request
then fails with 500 naming the missing key.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("http.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	provider, err := llm.NewProvider(cfg, logger)
	if err != nil {
		var cfgErr *llm.ConfigError
		if !errors.As(err, &cfgErr) {
			return err
		}
		logger.Warn("llm provider not configured, requests will fail", "key", cfgErr.Key, "env", cfgErr.Env)
		provider = llm.Unconfigured(cfg.LLM.Provider, cfgErr)
	}

	svc, err := generate.New(provider, llm.DefaultChatOptions(cfg), logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := server.NewRouter(server.Deps{Service: svc, Logger: logger})
	return server.Run(ctx, cfg.HTTP.Addr, router, cfg.HTTP.ShutdownTimeout, logger)
}
