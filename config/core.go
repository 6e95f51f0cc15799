// Package config implements configuration for the thirteen executable
// using https://github.com/spf13/viper.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Contains all the keys for thirteen's config
const (
	LogLevelKey = "loglevel"
	RuleKey     = "rule"
)

// Defaults for each key
const (
	DefaultLogLevel = "warn"
	DefaultRule     = "string"
)

// LogLevel is the logrus level name used when --loglevel is not passed
var LogLevel string

// Rule is the rule used to evaluate stdin when --as is not passed
var Rule string

// Load thirteen's config.
func Load() error {
	viper.SetDefault(LogLevelKey, DefaultLogLevel)
	viper.SetDefault(RuleKey, DefaultRule)

	// Tell viper that the config. can be read from THIRTEEN_<entry>
	// environment variables
	viper.SetEnvPrefix("THIRTEEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	LogLevel = viper.GetString(LogLevelKey)
	Rule = viper.GetString(RuleKey)

	return nil
}
