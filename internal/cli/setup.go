package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newSetupCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup <cluster> <namespace>",
		Short: "Provision the cluster and registry namespace",
		Long: `Authenticates to the container registry, creates the cluster if it
does not exist (waiting until it leaves the pending state), adds the
registry namespace, and exports the cluster's kube config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: setup failed, cluster name or namespace not provided.")
				return nil
			}
			return setup(cmd.Context(), opts, args[0], args[1])
		},
	}
}

func setup(ctx context.Context, o *Options, cluster, namespace string) error {
	cl := o.Cloud()

	if err := cl.RegistryLogin(ctx); err != nil {
		return err
	}

	exists, err := cl.ClusterExists(ctx, cluster)
	if err != nil {
		return err
	}
	if exists {
		log.Info("cluster already exists", "name", cluster)
	} else {
		if err := cl.CreateCluster(ctx, cluster); err != nil {
			return err
		}
		if err := cl.WaitForCluster(ctx, cluster); err != nil {
			return fmt.Errorf("cluster %s did not become ready: %w", cluster, err)
		}
	}

	if err := cl.AddRegistryNamespace(ctx, namespace); err != nil {
		return err
	}

	workers, err := cl.Workers(ctx, cluster)
	if err != nil {
		return err
	}
	for _, w := range workers {
		log.Info("worker", "id", w.ID, "publicIP", w.PublicIP, "state", w.State, "status", w.Status)
	}

	_, err = cl.ExportClusterConfig(ctx, cluster)
	return err
}
