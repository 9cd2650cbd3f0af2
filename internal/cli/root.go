// Package cli implements the chatctl terminal client.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/intentbot/chat-client/internal/config"
)

var (
	apiURL  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chatctl",
	Short: "Interactive terminal client for the intentbot chat backend",
	Long: `chatctl connects to a chat backend, starts a conversation session and
runs an interactive prompt. Type a message to chat, or use slash
commands (/help lists them) to manage the session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if apiURL != "" {
			cfg.Backend.URL = apiURL
		}

		setupLogging(cfg.Log, verbose)

		app, err := newApp(cfg, os.Stdin, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return app.run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "chat backend base URL (overrides CHATBOT_API_URL)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setupLogging keeps the prompt clean: warnings and errors only, unless
// verbose mode is on.
func setupLogging(cfg config.LogConfig, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil || parsed > zerolog.DebugLevel {
			parsed = zerolog.DebugLevel
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
