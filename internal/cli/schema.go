package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the clients and phones tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// initServices already runs the schema initializer
			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "Schema is ready")
			return nil
		},
	}
}
