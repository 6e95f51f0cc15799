package cmd

import (
	cmdutil "github.com/puppetlabs/thirteen/cmd/util"
	"github.com/puppetlabs/thirteen/cmd/version"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print thirteen's version",
		Args:  cobra.NoArgs,
		RunE:  toRunE(versionMain),
	}
	return versionCmd
}

func versionMain(cmd *cobra.Command, args []string) exitCode {
	cmdutil.Println(version.BuildVersion)
	return exitCode{0}
}
