package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/client-directory/internal/httperr"
)

func TestSearchCriteria_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		criteria  SearchCriteria
		wantField Field
		wantValue string
	}{
		{"first name", SearchCriteria{FirstName: "Ivan"}, FieldFirstName, "Ivan"},
		{"last name", SearchCriteria{LastName: "Popov"}, FieldLastName, "Popov"},
		{"email", SearchCriteria{Email: "ivan@x.com"}, FieldEmail, "ivan@x.com"},
		{"phone", SearchCriteria{Phone: "7123"}, FieldPhone, "7123"},
		{"blank fields ignored", SearchCriteria{FirstName: "  ", Phone: "7123"}, FieldPhone, "7123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, value, err := tt.criteria.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestSearchCriteria_Resolve_RequiresExactlyOne(t *testing.T) {
	_, _, err := SearchCriteria{}.Resolve()
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument))

	_, _, err = SearchCriteria{FirstName: "Ivan", Email: "ivan@x.com"}.Resolve()
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument))
}
