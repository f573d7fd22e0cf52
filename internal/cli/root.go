package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/client-directory/internal/config"
	"github.com/BruksfildServices01/client-directory/internal/logging"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string
	jsonOut bool
	cfg     *config.Config
}

// NewRootCmd builds the clientdir command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "clientdir",
		Short: "Client directory - clients and their phone numbers in PostgreSQL",
		Long: `clientdir manages a directory of clients and their phone numbers
stored in PostgreSQL.

It provides:
- Schema initialisation (safe to repeat)
- Adding, updating and deleting clients
- Adding and deleting phone numbers
- Searching clients by first name, last name, email or phone
- A JSON API protected by bearer tokens`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg

			logging.Setup(cfg.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (environment variables override it)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		newInitCmd(a),
		newClientCmd(a),
		newPhoneCmd(a),
		newTokenCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
