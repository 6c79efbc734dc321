package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	chipin "github.com/chipinhq/chipin-go"
	"github.com/chipinhq/chipin-go/pkg/apierror"
	"github.com/chipinhq/chipin-go/pkg/config"
	"github.com/chipinhq/chipin-go/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "chipin",
	Short: "Command-line client for the Chipin expense-splitting API",
	Long: `Command-line client for the Chipin expense-splitting API.

Authenticate, manage expense groups, record expenses, and settle balances.

Configuration comes from the environment (CHIPIN_BASE_URL, CHIPIN_TOKEN_FILE,
CHIPIN_LOG_LEVEL, ...) or a .env file in the working directory.

Examples:
  chipin login ada@example.com       # Obtain and store a session token
  chipin whoami                      # Show the authenticated user
  chipin groups list                 # List your expense groups
  chipin groups join SKI-7777        # Request to join a group by invite code
  chipin expenses add 7 "Lift tickets" 240.00

Named API targets can be kept in $XDG_CONFIG_HOME/chipin/profiles.yaml and
picked with --profile; the environment still wins over the profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var profileName string

func main() {
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "named API target from profiles.yaml")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, registerCmd, groupsCmd, expensesCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp builds the composition root from the environment.
func newApp() (*chipin.App, error) {
	var cfg chipin.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if err := applyProfile(&cfg); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
	slog.SetDefault(log)

	return chipin.New(cfg,
		chipin.WithLogger(log),
		// A terminal client has no page to navigate; the hard reset is the
		// cleared cache and removed token.
		chipin.WithNavigate(func(path string) {
			log.Debug("session reset", slog.String("route", path))
		}),
	)
}

// applyProfile overlays the selected (or default) profile from
// profiles.yaml onto the environment-derived configuration. Explicit
// environment variables take precedence over the profile.
func applyProfile(cfg *chipin.Config) error {
	dir, err := os.UserConfigDir()
	if err != nil {
		if profileName != "" {
			return fmt.Errorf("--profile %s: no user config directory: %w", profileName, err)
		}
		return nil
	}

	profiles, err := config.LoadProfiles(filepath.Join(dir, "chipin", "profiles.yaml"))
	if err != nil {
		return err
	}

	profile, ok := profiles.Select(profileName)
	if !ok {
		if profileName != "" {
			return fmt.Errorf("unknown profile %q", profileName)
		}
		return nil
	}

	if profile.BaseURL != "" && os.Getenv("CHIPIN_BASE_URL") == "" {
		cfg.BaseURL = profile.BaseURL
	}
	if profile.TokenFile != "" && os.Getenv("CHIPIN_TOKEN_FILE") == "" {
		cfg.TokenFile = profile.TokenFile
	}
	return nil
}

// reportAPIError renders a classified API error the way the web client
// does: field errors inline, general errors as a single banner line, and a
// generic fallback for anything unrecognized.
func reportAPIError(cmd *cobra.Command, err error) error {
	state := apierror.NewState()
	state.Set(err)

	switch {
	case state.IsValidationError():
		for field, msg := range state.FieldErrors() {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, msg)
		}
		return fmt.Errorf("request was rejected, fix the fields above")
	case state.IsGeneralError():
		return fmt.Errorf("%s", state.GeneralError())
	default:
		return fmt.Errorf("request failed: %w", err)
	}
}
