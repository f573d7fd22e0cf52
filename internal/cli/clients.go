package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

func newClientCmd(a *app) *cobra.Command {
	clientsCmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage clients",
	}

	clientsCmd.AddCommand(
		newClientAddCmd(a),
		newClientUpdateCmd(a),
		newClientDeleteCmd(a),
		newClientFindCmd(a),
		newClientShowCmd(a),
		newClientListCmd(a),
	)
	return clientsCmd
}

func newClientAddCmd(a *app) *cobra.Command {
	var in ucClient.AddClientInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new client, optionally with phone numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			client, err := services.Directory.AddClient.Execute(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to add client: %w", err)
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), client)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client created successfully\nClient ID: %d\n", client.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email (required)")
	cmd.Flags().StringArrayVar(&in.Phones, "phone", nil, "phone number (repeatable)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newClientUpdateCmd(a *app) *cobra.Command {
	var (
		changes     domain.Changes
		phoneID     uint
		phoneNumber string
	)

	cmd := &cobra.Command{
		Use:   "update <client-id>",
		Short: "Change a client's name, email or one of its phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID("client-id", args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("phone") || cmd.Flags().Changed("phone-id") {
				changes.Phone = &domain.PhoneChange{PhoneID: phoneID, Number: phoneNumber}
			}

			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			if err := services.Directory.UpdateClient.Execute(cmd.Context(), ucClient.UpdateClientInput{
				ClientID: clientID,
				Changes:  changes,
			}); err != nil {
				return fmt.Errorf("failed to update client: %w", err)
			}

			if changes.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to update")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client '%d' updated successfully\n", clientID)
			return nil
		},
	}

	cmd.Flags().StringVar(&changes.FirstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&changes.LastName, "last-name", "", "new last name")
	cmd.Flags().StringVar(&changes.Email, "email", "", "new email")
	cmd.Flags().UintVar(&phoneID, "phone-id", 0, "id of the phone to change (with --phone)")
	cmd.Flags().StringVar(&phoneNumber, "phone", "", "new number for --phone-id")
	cmd.MarkFlagsRequiredTogether("phone-id", "phone")

	return cmd
}

func newClientDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a client and all of its phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID("client-id", args[0])
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete client '%d'? (yes/no): ", clientID)
				scanner := bufio.NewScanner(cmd.InOrStdin())
				scanner.Scan()
				if strings.TrimSpace(scanner.Text()) != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			deleted, err := services.Directory.DeleteClient.Execute(cmd.Context(), clientID)
			if err != nil {
				return fmt.Errorf("failed to delete client: %w", err)
			}

			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Client '%d' does not exist\n", clientID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client '%d' deleted successfully\n", clientID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newClientFindCmd(a *app) *cobra.Command {
	var criteria domain.SearchCriteria

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a client by exactly one of first name, last name, email or phone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			match, err := services.Directory.FindClient.Execute(cmd.Context(), criteria)
			if err != nil {
				return fmt.Errorf("failed to find client: %w", err)
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), match)
			}
			printMatch(cmd.OutOrStdout(), match)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.FirstName, "first-name", "", "search by first name")
	cmd.Flags().StringVar(&criteria.LastName, "last-name", "", "search by last name")
	cmd.Flags().StringVar(&criteria.Email, "email", "", "search by email")
	cmd.Flags().StringVar(&criteria.Phone, "phone", "", "search by phone number")
	cmd.MarkFlagsMutuallyExclusive("first-name", "last-name", "email", "phone")
	cmd.MarkFlagsOneRequired("first-name", "last-name", "email", "phone")

	return cmd
}

func newClientShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <client-id>",
		Short: "Show a client with all of its phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID("client-id", args[0])
			if err != nil {
				return err
			}

			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			client, err := services.Directory.GetClient.Execute(cmd.Context(), clientID)
			if err != nil {
				return fmt.Errorf("failed to get client: %w", err)
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), client)
			}
			printClient(cmd.OutOrStdout(), client)
			return nil
		},
	}
}

func newClientListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			clients, err := services.Directory.ListClients.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), clients)
			}
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clients found")
				return nil
			}
			printClients(cmd.OutOrStdout(), clients)
			return nil
		},
	}
}

func parseID(name, raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, raw)
	}
	return uint(id), nil
}
