package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newInstallToolsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "install-tools",
		Short: "Install the platform CLI and its cluster plugin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return installTools(cmd.Context(), opts)
		},
	}
}

func installTools(ctx context.Context, o *Options) error {
	return o.Cloud().InstallTools(ctx)
}
