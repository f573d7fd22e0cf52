package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

func newPhoneCmd(a *app) *cobra.Command {
	phonesCmd := &cobra.Command{
		Use:     "phone",
		Aliases: []string{"phones"},
		Short:   "Manage client phone numbers",
	}

	phonesCmd.AddCommand(
		newPhoneAddCmd(a),
		newPhoneDeleteCmd(a),
	)
	return phonesCmd
}

func newPhoneAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <client-id> <number>",
		Short: "Add a phone number to an existing client",
		Args:  cobra.ExactArgs(2),
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

			phone, err := services.Directory.AddPhone.Execute(cmd.Context(), ucClient.AddPhoneInput{
				ClientID: clientID,
				Number:   args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to add phone: %w", err)
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), phone)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Phone added successfully\nPhone ID: %d\n", phone.ID)
			return nil
		},
	}
}

func newPhoneDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <client-id> <phone-id>",
		Short: "Delete one phone number of a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID("client-id", args[0])
			if err != nil {
				return err
			}
			phoneID, err := parseID("phone-id", args[1])
			if err != nil {
				return err
			}

			services, err := a.initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			deleted, err := services.Directory.DeletePhone.Execute(cmd.Context(), ucClient.DeletePhoneInput{
				ClientID: clientID,
				PhoneID:  phoneID,
			})
			if err != nil {
				return fmt.Errorf("failed to delete phone: %w", err)
			}

			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Client '%d' has no phone '%d'\n", clientID, phoneID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Phone '%d' deleted successfully\n", phoneID)
			return nil
		},
	}
}
