// Root command: persistent flags, config.yaml bootstrap, .env loading and
// logger setup shared by every subcommand.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rouxdev/salonsms/internal/paths"
	"github.com/rouxdev/salonsms/pkg/logx"
	"github.com/rouxdev/salonsms/pkg/salonsms"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys recognized in config.yaml.
	cfgKeySettingsDB = "settings_db"
	cfgKeyLogLevel   = "log_level"

	defaultLogLevel = "info"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# salonsms configuration

# Settings database path (optional; defaults to settings.db next to this file)
# settings_db:

# Log level: debug, info, warn, error
log_level: info
`

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// settingsDBPath is resolved by PersistentPreRunE so every subcommand opens
// the same settings database.
var settingsDBPath string

var rootCmd = &cobra.Command{
	Use:     "salonsms",
	Short:   "salonsms composes SMS reminders from a Notion or Airtable client base",
	Version: salonsms.Version,
	Long: `salonsms is a command line assistant for a grooming salon front desk.
It searches clients, lists the day's appointments and no-shows, and composes
SMS messages from stored templates, reading everything from a Notion database
or an Airtable base selected in the settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		// Credentials may live in <configDir>/.env instead of the settings
		// database. A missing file is fine.
		if err := godotenv.Load(filepath.Join(configDir, ".env")); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}

		settingsDBPath, err = paths.ResolveSettingsDB(configDir, cfg.GetString(cfgKeySettingsDB))
		if err != nil {
			return fmt.Errorf("resolve settings db: %w", err)
		}

		slog.SetDefault(logx.New(cfg.GetString(cfgKeyLogLevel)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(appointmentsCmd)
	rootCmd.AddCommand(noShowsCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(markSentCmd)
}

// loadConfig reads config.yaml from the config directory, creating the
// directory and a default file on first run. A missing config.yaml is not an
// error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
