// Package cmd implements thirteen's CLI using https://github.com/spf13/cobra.
package cmd

import (
	cmdutil "github.com/puppetlabs/thirteen/cmd/util"
	"github.com/puppetlabs/thirteen/cmd/version"
	"github.com/puppetlabs/thirteen/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Unfortunately, cobra.Command.Execute() can only return error objects.
// Thus, the only way for us to let each command configure its own exit
// code is to wrap that value in an error object.
type exitCode struct {
	value int
}

// Required to implement the error interface
func (e exitCode) Error() string {
	return ""
}

type commandMain func(cmd *cobra.Command, args []string) exitCode
type runE func(cmd *cobra.Command, args []string) error

func toRunE(main commandMain) runE {
	return func(cmd *cobra.Command, args []string) error {
		return main(cmd, args)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thirteen",
		Short: "Prints whether stdin is thirteen",
		Long: `Reads all of stdin, drops a single trailing newline, then prints true if
what remains is thirteen and false otherwise. Use --as to pick another rule,
e.g. 'echo nRteehit | thirteen --as anagram'.`,
		RunE: toRunE(rootMain),
		// Need to set these so that Cobra will not output the usage +
		// error object when Execute() returns an error, which will always
		// happen in our case because the exitCode object is technically
		// an error.
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Version:       version.BuildVersion,
	}

	rootCmd.Flags().String("as", config.Rule, "The rule used to evaluate stdin. One of "+joinRuleNames())
	viper.BindPFlag(config.RuleKey, rootCmd.Flags().Lookup("as"))
	rootCmd.Flags().Float64("radius", 0.5, "How far from 13 a number may be under the 'within' rule")
	rootCmd.PersistentFlags().String("loglevel", config.LogLevel, "Set the logging level")
	viper.BindPFlag(config.LogLevelKey, rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.AddCommand(versionCommand())

	return rootCmd
}

// Execute executes the root command, returning the exit code
func Execute() int {
	return execute(rootCommand())
}

func execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		// This can happen if the user invokes a help command.
		return 0
	}

	exitCode, ok := err.(exitCode)
	if !ok {
		// err is something Cobra-related, like e.g. a malformed
		// flag. Print the error, then return.
		cmdutil.ErrPrintf("Error: %v\n", err)
		return 1
	}

	return exitCode.value
}
