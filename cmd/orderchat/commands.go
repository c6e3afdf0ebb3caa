package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/orderchat/internal/config"
	"github.com/muurk/orderchat/internal/logging"
	"github.com/muurk/orderchat/internal/profile"
	"github.com/muurk/orderchat/internal/session"
	"github.com/muurk/orderchat/internal/ui"
)

// errOrderRejected is returned after the validation error box has been printed.
var errOrderRejected = errors.New("order rejected")

// Order command flags
var (
	orderValues  = map[profile.Field]*string{}
	orderSeed    uint64
	outputFormat string
	forceInit    bool
)

func init() {
	for _, f := range profile.Fields {
		orderValues[f] = new(string)
		orderCmd.Flags().StringVar(orderValues[f], f.String(), "", f.Label())
	}
	orderCmd.Flags().Uint64Var(&orderSeed, "seed", 0, "Seed for the order id generator (0 = random)")
	orderCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(configCmd)
}

// orderCmd submits a profile without the interactive UI
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Submit details and print the order id",
	Long: `Submit a profile from the command line and print the generated order id.

All five fields are required. Gender must be one of male, female or other.
When any field is missing the same validation error the form shows is
printed and the command exits with status 1.`,
	Example: `  # Place an order
  orderchat order --first-name Ann --last-name Lee \
    --address "1 High St" --phone 5550100 --gender female

  # Reproducible order id
  orderchat order ... --seed 42

  # JSON output for scripting
  orderchat order ... --format json`,
	RunE: runOrder,
}

func runOrder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}
	defer logging.Sync()

	var gen profile.IDGenerator = profile.NewRandomGenerator()
	if orderSeed != 0 {
		gen = profile.NewSeededGenerator(orderSeed)
	}

	values := make(map[profile.Field]string, len(orderValues))
	for f, v := range orderValues {
		values[f] = *v
	}
	return placeOrder(cmd.OutOrStdout(), session.New(gen), values, outputFormat)
}

// placeOrder fills sess from values, submits it and reports the outcome on out.
func placeOrder(out io.Writer, sess *session.Session, values map[profile.Field]string, format string) error {
	var params []ui.Detail
	for _, f := range profile.Fields {
		if v, ok := values[f]; ok {
			sess.UpdateField(f, v)
			params = append(params, ui.Detail{Key: f.Label(), Value: v})
		}
	}

	id, err := sess.Submit()

	if format == "json" {
		return writeOrderJSON(out, sess.Profile(), err)
	}

	printer := ui.NewPrinter(out)
	printer.PrintHeader("Place Order", "orderchat order", params)
	if err != nil {
		var subErr *profile.SubmissionError
		hints := []string{"Pass every field with its flag, e.g. --first-name Ann"}
		if errors.As(err, &subErr) {
			hints = append([]string{"Missing: " + subErr.Detail()}, hints...)
		}
		printer.PrintError("Error", errors.New(profile.IncompleteMessage), hints)
		return errOrderRejected
	}

	p := sess.Profile()
	printer.PrintSuccess("Order Created", []ui.Detail{
		{Key: "Order ID", Value: id},
		{Key: "Name", Value: p.FullName()},
		{Key: "Address", Value: p.Address},
		{Key: "Phone", Value: p.Phone},
		{Key: "Gender", Value: p.Gender.Label()},
	})
	return nil
}

type orderResult struct {
	OK      bool                `json:"ok"`
	Profile profile.UserProfile `json:"profile"`
	Error   string              `json:"error,omitempty"`
	Missing []string            `json:"missing,omitempty"`
}

func writeOrderJSON(out io.Writer, p profile.UserProfile, submitErr error) error {
	result := orderResult{OK: submitErr == nil, Profile: p}
	var subErr *profile.SubmissionError
	if errors.As(submitErr, &subErr) {
		result.Error = subErr.Message
		result.Missing = subErr.MissingFields()
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))

	if submitErr != nil {
		return errOrderRejected
	}
	return nil
}

// configCmd groups the config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		return initConfig(cmd.OutOrStdout(), path, forceInit)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// initConfig writes the default config to path unless one already exists.
func initConfig(out io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	if err := config.Default().SaveFile(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote default config to %s\n", path)
	return nil
}
