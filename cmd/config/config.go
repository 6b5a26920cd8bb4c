package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitConfig wires viper to the config file and environment. Flags
// bound by the commands take precedence over both.
func InitConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	configDir := filepath.Join(home, ".config", "claude-explorer")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CLAUDE_EXPLORER")

	viper.SetDefault("claude_dir", filepath.Join(home, ".claude"))
	viper.SetDefault("output", filepath.Join(home, "claude-explorer.html"))
	viper.SetDefault("max_sessions", 20)
	viper.SetDefault("max_messages", 500)

	// A missing config file is normal operation.
	_ = viper.ReadInConfig()
}

// NewLogger returns the shared stderr logger. Warnings always show;
// verbose mode turns on per-category progress at debug level.
func NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
