package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bimmerbailey/copygen/internal/config"
	"github.com/bimmerbailey/copygen/internal/generate"
	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/bimmerbailey/copygen/internal/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// logLevel backs logger; config reloads update it.
var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
)

var rootCmd = &cobra.Command{
	Use:   "copygen",
	Short: "AI marketing copy generator",
	Long: `Copygen generates marketing copy with a chat-completion model.

It builds a prompt for the chosen content type (slogans, social captions,
hashtag sets, product descriptions, or marketing emails), sends it to the
configured provider, and splits the numbered reply into variations.

Examples:
  copygen generate --type slogan --business "Acme Coffee" --product "cold brew"
  copygen generate --type social --business Acme --product tea --platform Instagram -n 5
  copygen serve --addr :8080
  copygen types`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		colorize := output.Colorize(output.ParseColorMode(viper.GetString("color")), os.Stderr)
		fmt.Fprintln(os.Stderr, output.ErrorLine(err.Error(), colorize))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.copygen.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, yaml, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto, always, never)")
	rootCmd.PersistentFlags().String("provider", "", "llm provider (openai, azure, ollama)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("llm.provider", rootCmd.PersistentFlags().Lookup("provider"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".copygen")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())
	viper.SetDefault("color", "auto")
	if err := config.BindEnv(viper.GetViper()); err != nil {
		fmt.Fprintln(os.Stderr, "Error binding environment:", err)
		os.Exit(1)
	}

	if err := viper.ReadInConfig(); err == nil {
		applyLogLevel()
		logger.Debug("using config file", "file", viper.ConfigFileUsed())

		viper.OnConfigChange(func(e fsnotify.Event) {
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				return
			}
			applyLogLevel()
			logger.Info("config reloaded", "file", e.Name, "level", logLevel.Level())
		})
		viper.WatchConfig()
		return
	}

	applyLogLevel()
}

// applyLogLevel sets the shared log level from the current viper state.
func applyLogLevel() {
	cfg := &config.Config{
		LogLevel: viper.GetString("log_level"),
		Verbose:  viper.GetBool("verbose"),
	}
	logLevel.Set(cfg.Level())
}

// loadConfig unmarshals the global viper state.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// newService builds the configured provider and wraps it in a generation
// service.
func newService(cfg *config.Config) (*generate.Service, error) {
	provider, err := llm.NewProvider(cfg, logger)
	if err != nil {
		var cfgErr *llm.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("%w\n\nSet it in ~/.copygen.yaml or via %s", err, envHint(cfgErr))
		}
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}
	return generate.New(provider, llm.DefaultChatOptions(cfg), logger)
}

// envHint names the environment variables that can supply a missing key.
func envHint(e *llm.ConfigError) string {
	vars := []string{config.EnvPrefix + "_" + envKey(e.Key)}
	vars = append(vars, e.Env...)
	return joinOr(vars)
}
