package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

// runRepositoryContract checks the behaviour every domain.Repository must
// share. newRepo must return an empty repository with the schema in place.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) domain.Repository) {
	ctx := context.Background()

	newClient := func(t *testing.T, repo domain.Repository, first string, phones ...string) *models.Client {
		t.Helper()
		c := &models.Client{FirstName: first, LastName: "Popov", Email: first + "@x.com"}
		for _, n := range phones {
			c.Phones = append(c.Phones, models.Phone{Number: n})
		}
		require.NoError(t, repo.CreateClient(ctx, c))
		return c
	}

	t.Run("EnsureSchema is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.EnsureSchema(ctx))
		require.NoError(t, repo.EnsureSchema(ctx))
	})

	t.Run("CreateClient assigns ids to client and phones", func(t *testing.T) {
		repo := newRepo(t)
		c := newClient(t, repo, "Ivan", "7123", "7456")

		assert.NotZero(t, c.ID)
		require.Len(t, c.Phones, 2)
		for _, p := range c.Phones {
			assert.NotZero(t, p.ID)
			assert.Equal(t, c.ID, p.ClientID)
		}

		got, err := repo.GetClient(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ivan", got.FirstName)
		assert.Equal(t, "Popov", got.LastName)
		assert.Equal(t, "Ivan@x.com", got.Email)
		require.Len(t, got.Phones, 2)
		assert.Equal(t, "7123", got.Phones[0].Number)
		assert.Equal(t, "7456", got.Phones[1].Number)
	})

	t.Run("GetClient missing is not_found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetClient(ctx, 999)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})

	t.Run("ListClients orders by id", func(t *testing.T) {
		repo := newRepo(t)
		a := newClient(t, repo, "Ivan", "1")
		b := newClient(t, repo, "Dima")

		clients, err := repo.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 2)
		assert.Equal(t, a.ID, clients[0].ID)
		assert.Equal(t, b.ID, clients[1].ID)
		assert.Len(t, clients[0].Phones, 1)
		assert.Empty(t, clients[1].Phones)
	})

	t.Run("client without phones reads back an empty phone list", func(t *testing.T) {
		repo := newRepo(t)
		c := newClient(t, repo, "Dima")

		got, err := repo.GetClient(ctx, c.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Phones)
		assert.Empty(t, got.Phones)

		clients, err := repo.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.NotNil(t, clients[0].Phones)

		raw, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"phones":[]`)
	})

	t.Run("AddPhone to missing client is a constraint violation", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.AddPhone(ctx, &models.Phone{ClientID: 999, Number: "7123"})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeConstraintViolation), "got %v", err)
	})

	t.Run("UpdateClient changes only the given fields", func(t *testing.T) {
		repo := newRepo(t)
		c := newClient(t, repo, "Ivan", "7123")

		require.NoError(t, repo.UpdateClient(ctx, c.ID, domain.Changes{
			FirstName: "Dima",
			Phone:     &domain.PhoneChange{PhoneID: c.Phones[0].ID, Number: "1234567890"},
		}))

		got, err := repo.GetClient(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dima", got.FirstName)
		assert.Equal(t, "Popov", got.LastName)
		assert.Equal(t, "Ivan@x.com", got.Email)
		assert.Equal(t, "1234567890", got.Phones[0].Number)
	})

	t.Run("UpdateClient touches a single phone", func(t *testing.T) {
		repo := newRepo(t)
		c := newClient(t, repo, "Ivan", "111", "222")

		require.NoError(t, repo.UpdateClient(ctx, c.ID, domain.Changes{
			Phone: &domain.PhoneChange{PhoneID: c.Phones[1].ID, Number: "333"},
		}))

		got, err := repo.GetClient(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "111", got.Phones[0].Number)
		assert.Equal(t, "333", got.Phones[1].Number)
	})

	t.Run("UpdateClient on missing client is not_found", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.UpdateClient(ctx, 999, domain.Changes{Email: "x@y.z"})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})

	t.Run("UpdateClient with another client's phone is not_found and rolls back", func(t *testing.T) {
		repo := newRepo(t)
		owner := newClient(t, repo, "Ivan", "111")
		other := newClient(t, repo, "Dima", "222")

		err := repo.UpdateClient(ctx, other.ID, domain.Changes{
			LastName: "Ivanov",
			Phone:    &domain.PhoneChange{PhoneID: owner.Phones[0].ID, Number: "999"},
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

		got, err := repo.GetClient(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "Popov", got.LastName)

		got, err = repo.GetClient(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "111", got.Phones[0].Number)
	})

	t.Run("DeletePhone with mismatched pair is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		owner := newClient(t, repo, "Ivan", "111")
		other := newClient(t, repo, "Dima")

		n, err := repo.DeletePhone(ctx, other.ID, owner.Phones[0].ID)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := repo.GetClient(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, got.Phones, 1)

		n, err = repo.DeletePhone(ctx, owner.ID, owner.Phones[0].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("DeleteClient removes phones first", func(t *testing.T) {
		repo := newRepo(t)
		c := newClient(t, repo, "Ivan", "111", "222")

		n, err := repo.DeleteClient(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.GetClient(ctx, c.ID)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

		_, err = repo.FindClient(ctx, domain.FieldPhone, "111")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})

	t.Run("DeleteClient missing is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		n, err := repo.DeleteClient(ctx, 999)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("FindClient by every field", func(t *testing.T) {
		repo := newRepo(t)
		c := &models.Client{
			FirstName: "Ivan",
			LastName:  "Popov",
			Email:     "ivan@x.com",
			Phones:    []models.Phone{{Number: "7123"}},
		}
		require.NoError(t, repo.CreateClient(ctx, c))

		want := models.ClientMatch{
			ClientID:  c.ID,
			FirstName: "Ivan",
			LastName:  "Popov",
			Email:     "ivan@x.com",
			PhoneID:   c.Phones[0].ID,
			Number:    "7123",
		}

		for field, value := range map[domain.Field]string{
			domain.FieldFirstName: "Ivan",
			domain.FieldLastName:  "Popov",
			domain.FieldEmail:     "ivan@x.com",
			domain.FieldPhone:     "7123",
		} {
			got, err := repo.FindClient(ctx, field, value)
			require.NoError(t, err, "field %s", field)
			assert.Equal(t, want, *got, "field %s", field)
		}
	})

	t.Run("FindClient returns the first match only", func(t *testing.T) {
		repo := newRepo(t)
		first := newClient(t, repo, "Ivan", "111", "222")
		newClient(t, repo, "Ivan", "333")

		got, err := repo.FindClient(ctx, domain.FieldLastName, "Popov")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ClientID)
		assert.Equal(t, "111", got.Number)
	})

	t.Run("FindClient skips clients without phones", func(t *testing.T) {
		repo := newRepo(t)
		newClient(t, repo, "Ivan")

		_, err := repo.FindClient(ctx, domain.FieldFirstName, "Ivan")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})

	t.Run("FindClient rejects unknown fields", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.FindClient(ctx, domain.Field("fname; DROP TABLE clients"), "x")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument))
	})
}
