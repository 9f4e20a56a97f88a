package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aromatt/llstack/internal/build"
)

// NewVersionCommand returns the command to get the llstack version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the llstack version",
		Long:  "Return the llstack version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "llstack version %s date %s commit %s\n", build.Version, build.Date, build.Commit)
	return err
}
