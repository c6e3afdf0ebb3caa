// Orderchat is a terminal demo of an order form with a scripted support chat.
//
// The user fills in their contact details, submits them to receive an order
// id, and may then open a chat screen offering canned answers about the
// order. Nothing is persisted; every run starts with an empty form.
//
// Usage:
//
//	orderchat [command] [flags]
//
// Running without arguments launches the interactive UI.
// See 'orderchat --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/orderchat/internal/config"
	"github.com/muurk/orderchat/internal/logging"
	"github.com/muurk/orderchat/internal/profile"
	"github.com/muurk/orderchat/internal/session"
	"github.com/muurk/orderchat/internal/tui"
	"github.com/muurk/orderchat/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The order command has already printed its error box
		if !errors.Is(err, errOrderRejected) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var (
	configPath  string
	noAltScreen bool
)

var rootCmd = &cobra.Command{
	Use:   "orderchat",
	Short: "Order form and support chat demo",
	Long: `A terminal demo of an order form with a scripted support chat.

Fill in your name, address, phone number and gender, then submit to receive
an order id. Once an order exists, the chat screen can show the order
details, take a wrong-order report or tell you whether it has shipped.

If no command is specified, the interactive UI will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the OS config directory)")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of using the alternate screen")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config from --config or the default location.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// initLogging starts the logger at the configured level. Commands write their
// output to stdout, so logs always go to the log file.
func initLogging(cfg *config.Config) error {
	logFile, err := cfg.ResolveLogFile()
	if err != nil {
		return fmt.Errorf("failed to resolve log file: %w", err)
	}
	return logging.Initialize(cfg.LogLevel, logFile)
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogging(cfg); err != nil {
		return err
	}
	defer logging.Sync()

	sess := session.New(profile.NewRandomGenerator())
	logging.Info("Starting interactive session")

	return tui.Run(sess, tui.Options{
		AltScreen: cfg.AltScreen && !noAltScreen,
		Styles:    tui.NewStyles(cfg.Theme),
	})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "orderchat %s (commit: %s)\n", info.Version, info.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "built with %s for %s\n", info.GoVersion, info.Platform)
	},
}
