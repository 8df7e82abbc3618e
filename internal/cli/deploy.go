package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeployCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <app>",
		Short: "Expose the deployment on a worker's external IP",
		Long: `Creates a NodePort service for the application deployment, bound to
the first worker's external IP on the application port.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: deploy failed, application name not provided.")
				return nil
			}
			return deploy(cmd.Context(), opts, args[0])
		},
	}
}

func deploy(ctx context.Context, o *Options, app string) error {
	kc, err := o.Kube()
	if err != nil {
		return fmt.Errorf("failed to reach the cluster API: %w", err)
	}

	ip, err := kc.NodeExternalIP(ctx)
	if err != nil {
		return err
	}

	_, err = kc.Expose(ctx, app, ip, int32(o.Config.AppPort))
	return err
}
