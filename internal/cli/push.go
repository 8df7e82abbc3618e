package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPushCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "push <image> <namespace>",
		Short: "Tag and push the image to the platform registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: push failed, docker name or namespace not provided.")
				return nil
			}
			return push(cmd.Context(), opts, args[0], args[1])
		},
	}
}

func push(ctx context.Context, o *Options, image, namespace string) error {
	eng := o.Docker()

	if _, err := eng.Push(ctx, image, namespace); err != nil {
		return err
	}

	if err := eng.PS(ctx); err != nil {
		return err
	}
	return o.Cloud().RegistryImages(ctx)
}
