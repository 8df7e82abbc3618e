package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kubedeploy/kubedeploy/internal/kube"
)

func newGetIPCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get-ip <cluster>",
		Short: "Print the application's public URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: get_ip failed, cluster name not provided.")
				return nil
			}

			url, err := resolveEndpoint(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

// resolveEndpoint composes the public URL from a worker's external IP
// and the exposed service's node port. The IP comes from the cluster
// API when reachable, falling back to the platform CLI worker list.
func resolveEndpoint(ctx context.Context, o *Options, cluster string) (string, error) {
	kc, err := o.Kube()
	if err != nil {
		return "", fmt.Errorf("failed to reach the cluster API: %w", err)
	}

	ip, err := kc.NodeExternalIP(ctx)
	if err != nil {
		log.Debug("no external IP from the cluster API, falling back to worker list", "error", err)
		ip, err = o.Cloud().WorkerPublicIP(ctx, cluster)
		if err != nil {
			return "", err
		}
	}

	port, err := kc.ServiceNodePort(ctx, cluster)
	if err != nil {
		return "", err
	}

	return kube.AppURL(ip, port), nil
}
