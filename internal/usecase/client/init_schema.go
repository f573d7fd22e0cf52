package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
)

// InitSchema creates the clients and phones tables when missing. Repeat
// calls are no-ops.
type InitSchema struct {
	repo domain.Repository
}

func NewInitSchema(repo domain.Repository) *InitSchema {
	return &InitSchema{repo: repo}
}

func (uc *InitSchema) Execute(ctx context.Context) error {
	return uc.repo.EnsureSchema(ctx)
}
