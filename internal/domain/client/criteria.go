package client

import (
	"strings"

	"github.com/BruksfildServices01/client-directory/internal/httperr"
)

type Field string

const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
)

// SearchCriteria holds the candidate lookups of a search. Exactly one of
// them may be set.
type SearchCriteria struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Resolve returns the single field and value to search on.
func (c SearchCriteria) Resolve() (Field, string, error) {
	candidates := []struct {
		field Field
		value string
	}{
		{FieldFirstName, c.FirstName},
		{FieldLastName, c.LastName},
		{FieldEmail, c.Email},
		{FieldPhone, c.Phone},
	}

	var (
		field Field
		value string
		set   int
	)
	for _, cand := range candidates {
		if strings.TrimSpace(cand.value) == "" {
			continue
		}
		field, value = cand.field, cand.value
		set++
	}

	switch set {
	case 0:
		return "", "", httperr.InvalidArgument("one search criterion is required")
	case 1:
		return field, value, nil
	default:
		return "", "", httperr.InvalidArgument("only one search criterion may be given")
	}
}
