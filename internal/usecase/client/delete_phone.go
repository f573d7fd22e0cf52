package client

import (
	"context"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
)

type DeletePhoneInput struct {
	ClientID uint
	PhoneID  uint
}

type DeletePhone struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePhone(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeletePhone {
	return &DeletePhone{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the phone only when it belongs to the client. It reports
// whether a row was deleted; a mismatched pair is not an error.
func (uc *DeletePhone) Execute(
	ctx context.Context,
	in DeletePhoneInput,
) (bool, error) {

	n, err := uc.repo.DeletePhone(ctx, in.ClientID, in.PhoneID)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPhoneDeleted,
		Entity:   audit.EntityPhone,
		EntityID: in.PhoneID,
		ClientID: in.ClientID,
	})

	return true, nil
}
