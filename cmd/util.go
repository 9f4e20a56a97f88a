package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aromatt/llstack/pkg/logger"
)

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// newLogger builds the logger described by the log-format and log-level settings.
func newLogger() (*logger.ZapLogger, error) {
	return logger.NewLogger(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))
}
