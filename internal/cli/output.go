package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BruksfildServices01/client-directory/internal/models"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMatch(w io.Writer, m *models.ClientMatch) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENT ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONE ID\tPHONE")
	fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
		m.ClientID, m.FirstName, m.LastName, m.Email, m.PhoneID, m.Number)
	tw.Flush()
}

func printClient(w io.Writer, c *models.Client) {
	fmt.Fprintf(w, "Client ID:  %d\n", c.ID)
	fmt.Fprintf(w, "First name: %s\n", c.FirstName)
	fmt.Fprintf(w, "Last name:  %s\n", c.LastName)
	fmt.Fprintf(w, "Email:      %s\n", c.Email)

	if len(c.Phones) == 0 {
		fmt.Fprintln(w, "Phones:     none")
		return
	}
	fmt.Fprintln(w, "Phones:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  PHONE ID\tNUMBER")
	for _, p := range c.Phones {
		fmt.Fprintf(tw, "  %d\t%s\n", p.ID, p.Number)
	}
	tw.Flush()
}

func printClients(w io.Writer, clients []models.Client) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENT ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONES")
	for _, c := range clients {
		numbers := make([]string, 0, len(c.Phones))
		for _, p := range c.Phones {
			numbers = append(numbers, p.Number)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, c.FirstName, c.LastName, c.Email, strings.Join(numbers, ", "))
	}
	tw.Flush()
}
