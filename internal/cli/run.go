package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <image>",
		Short: "Run the container locally with the app port mapped",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: run failed, docker name not provided.")
				return nil
			}
			return opts.Docker().Run(cmd.Context(), args[0])
		},
	}
}
