package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kubedeploy/kubedeploy/internal/config"
	"github.com/kubedeploy/kubedeploy/internal/execx"
)

// NewRootCommand builds the root command with real dependencies.
func NewRootCommand() *cobra.Command {
	return newRootCommand(NewOptions())
}

func newRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kubedeploy",
		Short: "Deploy a containerized app to a managed cluster",
		Long: `kubedeploy automates deploying a containerized web application to a
managed Kubernetes cluster: provisioning the cluster, building and
pushing the image, binding a managed database service, and exposing
the deployment's public endpoint.`,
		// Unknown action names fall through to the root Run, which
		// prints usage and exits successfully.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Config != nil {
				return nil
			}
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.Config = cfg

			for _, bin := range []string{cfg.Platform.CLI, cfg.DockerCLI, cfg.KubectlCLI} {
				if !execx.Available(bin) {
					log.Debug("CLI not found on PATH", "cli", bin)
				}
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				fmt.Fprintf(os.Stderr, "Error showing help: %v\n", err)
			}
		},
	}

	opts.ConfigFlags.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to the kubedeploy config file")

	rootCmd.AddCommand(newInstallToolsCommand(opts))
	rootCmd.AddCommand(newLoginCommand(opts))
	rootCmd.AddCommand(newSetupCommand(opts))
	rootCmd.AddCommand(newBuildCommand(opts))
	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newStopCommand(opts))
	rootCmd.AddCommand(newPushCommand(opts))
	rootCmd.AddCommand(newCreateDBCommand(opts))
	rootCmd.AddCommand(newGetIPCommand(opts))
	rootCmd.AddCommand(newDeployCommand(opts))
	rootCmd.AddCommand(newPopulateDBCommand(opts))
	rootCmd.AddCommand(newDeleteCommand(opts))
	rootCmd.AddCommand(newAllCommand(opts))

	return rootCmd
}
