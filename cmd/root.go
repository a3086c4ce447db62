package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/scandash/api"
	"github.com/marcus/scandash/auth"
	"github.com/marcus/scandash/config"
	"github.com/marcus/scandash/history"
	"github.com/marcus/scandash/tui"
)

// version is stamped at build time via -ldflags.
var version = "0.1.0"

var configFlag string

var rootCmd = &cobra.Command{
	Use:          "scandash",
	Short:        "Terminal dashboard for the code-analysis backend",
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := auth.NewStore()
		if err != nil {
			return err
		}
		creds, err := store.Load()
		if err != nil {
			if errors.Is(err, auth.ErrNoCredentials) {
				return fmt.Errorf("not logged in — run `scandash login` first")
			}
			return err
		}
		if !creds.Valid() {
			return fmt.Errorf("stored credentials are incomplete — run `scandash login` again")
		}

		// The dashboard works without a run log; history just shows an error.
		histDB, histErr := history.Open(history.DefaultPath())
		if histErr != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", histErr)
		} else {
			defer histDB.Close()
		}

		client := api.NewClient(cfg.ResolvedBaseURL(), creds.Token, creds.UserIDOrAnonymous(), cfg.ResolvedTimeout())

		app := tui.NewApp(cfg, configPath, creds, store, client, histDB)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		final, err := p.Run()
		if err != nil {
			return err
		}

		if a, ok := final.(tui.App); ok && a.LoggedOut {
			fmt.Println("Logged out. Run `scandash login` to sign back in.")
		}
		return nil
	},
}

// loadConfig reads the config file. A missing file at the default location is
// fine; a missing file at an explicit --config path is an error.
func loadConfig() (config.Config, string, error) {
	path := configFlag
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Config{}, path, nil
		}
		return config.Config{}, path, fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: ~/.config/scandash/config.toml)")
}
