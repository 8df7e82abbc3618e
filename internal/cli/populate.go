package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubedeploy/kubedeploy/internal/seed"
)

func newPopulateDBCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "populate-db <url>",
		Short: "Load sample to-do items into the deployed application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: populate_db failed, application URL not provided.")
				return nil
			}
			return seed.NewSeeder(opts.Config.SeedItems).Populate(cmd.Context(), args[0])
		},
	}
}
