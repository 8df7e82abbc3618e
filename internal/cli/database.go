package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateDBCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "create-db <cluster> <instance>",
		Short: "Provision the managed database and bind it to the cluster",
		Long: `Applies the application manifest from the working directory, creates
a Lite-tier managed database service instance, and binds it to the
cluster's default resource group.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: create_db failed, cluster or database name not provided.")
				return nil
			}
			return createDB(cmd.Context(), opts, args[0], args[1])
		},
	}
}

func createDB(ctx context.Context, o *Options, cluster, instance string) error {
	// The manifest is expected in the working directory.
	if err := o.Runner.Run(ctx, o.Config.KubectlCLI, "apply", "-f", o.Config.Manifest); err != nil {
		return err
	}

	cl := o.Cloud()
	if err := cl.CreateServiceInstance(ctx, instance); err != nil {
		return err
	}
	return cl.BindService(ctx, cluster, instance)
}
