package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubedeploy/kubedeploy/internal/workflows"
)

func newAllCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "all <cluster> <instance> <image> <namespace>",
		Short: "Run the full deployment pipeline end to end",
		Long: `Composes install-tools, login, setup, build, push, create-db, deploy
and get-ip into a single pipeline. A failed step marks the run failed
and the remaining steps are skipped; every step's outcome is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 4 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: all failed, cluster, database, docker name or namespace not provided.")
				return nil
			}
			return runAll(cmd, opts, args[0], args[1], args[2], args[3])
		},
	}
}

func runAll(cmd *cobra.Command, opts *Options, cluster, instance, image, namespace string) error {
	pipeline := workflows.NewPipeline("all", allSteps(cmd, opts, cluster, instance, image, namespace)...)

	results, err := pipeline.Execute(cmd.Context())
	workflows.Summarize(results)
	return err
}

// allSteps builds the pipeline steps in the documented order. The
// deployed application shares the image's name.
func allSteps(cmd *cobra.Command, opts *Options, cluster, instance, image, namespace string) []workflows.Step {
	return []workflows.Step{
		{Name: "install-tools", Run: func(ctx context.Context) error {
			return installTools(ctx, opts)
		}},
		{Name: "login", Run: func(ctx context.Context) error {
			return login(ctx, opts)
		}},
		{Name: "setup", Run: func(ctx context.Context) error {
			return setup(ctx, opts, cluster, namespace)
		}},
		{Name: "build", Run: func(ctx context.Context) error {
			return opts.Docker().Build(ctx, image)
		}},
		{Name: "push", Run: func(ctx context.Context) error {
			return push(ctx, opts, image, namespace)
		}},
		{Name: "create-db", Run: func(ctx context.Context) error {
			return createDB(ctx, opts, cluster, instance)
		}},
		{Name: "deploy", Run: func(ctx context.Context) error {
			return deploy(ctx, opts, image)
		}},
		{Name: "get-ip", Run: func(ctx context.Context) error {
			url, err := resolveEndpoint(ctx, opts, cluster)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		}},
	}
}
