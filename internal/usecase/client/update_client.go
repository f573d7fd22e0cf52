package client

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
)

type UpdateClientInput struct {
	ClientID uint
	Changes  domain.Changes
}

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies every supplied change in one transaction. Without
// changes it returns nil without touching the repository.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	in UpdateClientInput,
) error {

	if in.Changes.IsEmpty() {
		return nil
	}

	if err := in.Changes.Validate(); err != nil {
		return err
	}

	if err := uc.repo.UpdateClient(ctx, in.ClientID, in.Changes); err != nil {
		return err
	}

	fields := make([]string, 0, 4)
	for col := range in.Changes.Columns() {
		fields = append(fields, col)
	}
	sort.Strings(fields)
	if in.Changes.Phone != nil {
		fields = append(fields, "phone")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientUpdated,
		Entity:   audit.EntityClient,
		EntityID: in.ClientID,
		ClientID: in.ClientID,
		Metadata: map[string][]string{"fields": fields},
	})

	return nil
}
