package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	cmdutil "github.com/puppetlabs/thirteen/cmd/util"
	"github.com/puppetlabs/thirteen/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootMain reads stdin, evaluates it under the selected rule, and prints
// true or false. Nothing is printed on stdout if stdin can't be read.
func rootMain(cmd *cobra.Command, args []string) exitCode {
	if err := setupLogging(viper.GetString(config.LogLevelKey)); err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	ruleName := viper.GetString(config.RuleKey)
	radius, err := cmd.Flags().GetFloat64("radius")
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	rule, err := lookupRule(ruleName, radius)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	input, err := readInput(cmdutil.Stdin)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	log.Debugf("Read %v bytes from stdin", len(input))

	p, err := rule(input)
	if err != nil {
		cmdutil.ErrPrintf("Could not evaluate the input as %v: %v\n", ruleName, err)
		return exitCode{1}
	}
	isThirteen := p.Thirteen()
	log.Debugf("Evaluated the input with the %v rule: %v", ruleName, isThirteen)

	cmdutil.Println(isThirteen)
	return exitCode{0}
}

// logLevels are the --loglevel values, most severe first. logrus also
// knows panic and fatal, but nothing here logs at those levels.
var logLevels = []string{"error", "warn", "info", "debug", "trace"}

func setupLogging(levelName string) error {
	for _, name := range logLevels {
		if name != levelName {
			continue
		}
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		// Logs go to stderr so that stdout is only ever true or false
		log.SetOutput(cmdutil.Stderr)
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		log.SetLevel(level)
		return nil
	}
	return fmt.Errorf("%v is not a valid level. Valid levels are %v", levelName, strings.Join(logLevels, ", "))
}

// readInput reads all of r as UTF-8 text and drops one trailing newline.
func readInput(r io.Reader) (string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}
	if !utf8.Valid(data) {
		return "", errors.New("failed to read stdin: input is not valid UTF-8")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
