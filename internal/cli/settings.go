package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/termfolio/internal/config"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// loadSettings resolves the effective configuration.
// Precedence: flags > environment (.env included) > termfolio.yaml > defaults.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := loadConfigFile(cmd)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("content") {
		cfg.ContentDir, _ = flags.GetString("content")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if noBanner, _ := flags.GetBool("no-banner"); noBanner {
		off := false
		cfg.Banner = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads --config, or termfolio.yaml in the working directory.
// A missing default file is not an error; a missing explicit one is.
func loadConfigFile(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", termfolio.ErrInvalidConfig, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}
