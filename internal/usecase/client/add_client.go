package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddClientInput struct {
	FirstName string
	LastName  string
	Email     string

	// Phones may be empty; each entry becomes one phone row.
	Phones []string
}

func (in AddClientInput) validate() error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return httperr.InvalidArgument("first_name is required")
	case strings.TrimSpace(in.LastName) == "":
		return httperr.InvalidArgument("last_name is required")
	case strings.TrimSpace(in.Email) == "":
		return httperr.InvalidArgument("email is required")
	}

	for _, number := range in.Phones {
		if strings.TrimSpace(number) == "" {
			return httperr.InvalidArgument("phone numbers must not be blank")
		}
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type AddClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddClient {
	return &AddClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddClient) Execute(
	ctx context.Context,
	in AddClientInput,
) (*models.Client, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	client := &models.Client{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	for _, number := range in.Phones {
		client.Phones = append(client.Phones, models.Phone{Number: number})
	}

	if err := uc.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: client.ID,
		ClientID: client.ID,
		Metadata: map[string]int{"phones": len(client.Phones)},
	})

	return client, nil
}
