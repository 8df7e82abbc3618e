package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newLoginCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the cloud platform via SSO",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login(cmd.Context(), opts)
		},
	}
}

func login(ctx context.Context, o *Options) error {
	return o.Cloud().Login(ctx)
}
