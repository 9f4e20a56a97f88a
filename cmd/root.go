// Package cmd contains all the commands included in the llstack binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with LLSTACK, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LLSTACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/llstack", "$HOME/.llstack", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
	// A missing config file is not an error; flags and env still apply.
	_ = viper.ReadInConfig()

	cmd := &cobra.Command{
		Use:   "llstack",
		Short: "Drive a linked-list stack from the command line",
		Long: `llstack runs scripts of push, pop, peek and related commands against a
singly linked-list stack and prints the results.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(logLevelFlag, "info", "log level: none, debug, info, warn or error")
	MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))
	flags.String(logFormatFlag, "text", "log format: text or json")
	MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))

	return cmd
}
