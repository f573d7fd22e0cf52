package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

type FindClient struct {
	repo domain.Repository
}

func NewFindClient(repo domain.Repository) *FindClient {
	return &FindClient{repo: repo}
}

// Execute returns the first client/phone pair matching the single search
// criterion. Clients without phones never match.
func (uc *FindClient) Execute(
	ctx context.Context,
	criteria domain.SearchCriteria,
) (*models.ClientMatch, error) {

	field, value, err := criteria.Resolve()
	if err != nil {
		return nil, err
	}

	return uc.repo.FindClient(ctx, field, value)
}
