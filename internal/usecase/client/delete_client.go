package client

import (
	"context"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the client's phones and then the client. It reports
// whether the client existed.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	clientID uint,
) (bool, error) {

	n, err := uc.repo.DeleteClient(ctx, clientID)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientDeleted,
		Entity:   audit.EntityClient,
		EntityID: clientID,
		ClientID: clientID,
	})

	return true, nil
}
