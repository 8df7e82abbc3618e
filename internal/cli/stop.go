package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStopCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <image>",
		Short: "Force-remove the local container",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: stop failed, docker name not provided.")
				return nil
			}
			return opts.Docker().Stop(cmd.Context(), args[0])
		},
	}
}
