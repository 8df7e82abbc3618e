package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newDeleteCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <cluster> <instance> <namespace>",
		Short: "Tear down the deployment, service instance, and cluster",
		Long: `Unbinds and deletes the database service instance, removes the
exposed service and the deployment, and deletes the cluster. There is
no confirmation step; the teardown is irreversible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: delete failed, cluster, database or namespace not provided.")
				return nil
			}
			return teardown(cmd.Context(), opts, args[0], args[1])
		},
	}
}

func teardown(ctx context.Context, o *Options, cluster, instance string) error {
	cl := o.Cloud()

	if err := cl.UnbindService(ctx, cluster, instance); err != nil {
		return err
	}
	if err := cl.DeleteServiceKeys(ctx, instance); err != nil {
		return err
	}
	if err := cl.DeleteServiceInstance(ctx, instance); err != nil {
		return err
	}

	kc, err := o.Kube()
	if err != nil {
		return fmt.Errorf("failed to reach the cluster API: %w", err)
	}
	if err := kc.DeleteService(ctx, cluster); err != nil {
		return err
	}
	if err := kc.DeleteDeployment(ctx, cluster); err != nil {
		return err
	}

	if err := cl.RemoveCluster(ctx, cluster); err != nil {
		return err
	}

	log.Info("teardown complete", "cluster", cluster, "instance", instance)
	return nil
}
