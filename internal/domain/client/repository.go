package client

import (
	"context"

	"github.com/BruksfildServices01/client-directory/internal/models"
)

// Repository is the persistence port of the client directory. Every
// method runs in its own transaction and returns httperr business errors
// for classified failures.
type Repository interface {
	// -------- Schema --------
	EnsureSchema(ctx context.Context) error

	// -------- Client --------
	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	GetClient(
		ctx context.Context,
		clientID uint,
	) (*models.Client, error)

	ListClients(ctx context.Context) ([]models.Client, error)

	UpdateClient(
		ctx context.Context,
		clientID uint,
		changes Changes,
	) error

	// DeleteClient removes the client's phones and then the client. It
	// reports the number of client rows removed.
	DeleteClient(
		ctx context.Context,
		clientID uint,
	) (int64, error)

	// -------- Phone --------
	AddPhone(
		ctx context.Context,
		phone *models.Phone,
	) error

	DeletePhone(
		ctx context.Context,
		clientID uint,
		phoneID uint,
	) (int64, error)

	// -------- Search --------
	FindClient(
		ctx context.Context,
		field Field,
		value string,
	) (*models.ClientMatch, error)
}
