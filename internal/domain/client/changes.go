package client

import (
	"strings"

	"github.com/BruksfildServices01/client-directory/internal/httperr"
)

// PhoneChange replaces the number of one phone owned by the client.
type PhoneChange struct {
	PhoneID uint
	Number  string
}

// Changes lists the client fields to overwrite. Empty strings and a nil
// Phone leave the stored value untouched.
type Changes struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *PhoneChange
}

func (c Changes) IsEmpty() bool {
	return c.FirstName == "" &&
		c.LastName == "" &&
		c.Email == "" &&
		c.Phone == nil
}

// Columns maps the non-empty client fields to their column names.
func (c Changes) Columns() map[string]any {
	cols := map[string]any{}
	if c.FirstName != "" {
		cols["fname"] = c.FirstName
	}
	if c.LastName != "" {
		cols["lname"] = c.LastName
	}
	if c.Email != "" {
		cols["email"] = c.Email
	}
	return cols
}

// Validate rejects fields that are set but blank; clearing a required
// column is not an update.
func (c Changes) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"first_name", c.FirstName},
		{"last_name", c.LastName},
		{"email", c.Email},
	} {
		if f.value != "" && strings.TrimSpace(f.value) == "" {
			return httperr.InvalidArgument(f.name + " must not be blank")
		}
	}

	if c.Phone == nil {
		return nil
	}
	if c.Phone.PhoneID == 0 {
		return httperr.InvalidArgument("phone_id is required to change a phone number")
	}
	if strings.TrimSpace(c.Phone.Number) == "" {
		return httperr.InvalidArgument("phone number must not be blank")
	}
	return nil
}
