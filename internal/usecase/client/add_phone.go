package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

type AddPhoneInput struct {
	ClientID uint
	Number   string
}

type AddPhone struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddPhone(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddPhone {
	return &AddPhone{
		repo:  repo,
		audit: audit,
	}
}

// Execute inserts one phone for the client. An unknown client surfaces as
// a constraint_violation raised by the foreign key.
func (uc *AddPhone) Execute(
	ctx context.Context,
	in AddPhoneInput,
) (*models.Phone, error) {

	if strings.TrimSpace(in.Number) == "" {
		return nil, httperr.InvalidArgument("phone number is required")
	}

	phone := &models.Phone{
		ClientID: in.ClientID,
		Number:   in.Number,
	}
	if err := uc.repo.AddPhone(ctx, phone); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPhoneAdded,
		Entity:   audit.EntityPhone,
		EntityID: phone.ID,
		ClientID: in.ClientID,
	})

	return phone, nil
}
