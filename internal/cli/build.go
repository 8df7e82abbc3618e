package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "build <image>",
		Short: "Build the container image from the working directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				// Historical message text, kept verbatim.
				fmt.Fprintln(cmd.OutOrStdout(), "Error: run failed, docker name not provided.")
				return nil
			}
			return opts.Docker().Build(cmd.Context(), args[0])
		},
	}
}
