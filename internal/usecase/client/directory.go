package client

import (
	"github.com/BruksfildServices01/client-directory/internal/audit"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
)

// Directory groups every client use case over one repository.
type Directory struct {
	InitSchema   *InitSchema
	AddClient    *AddClient
	AddPhone     *AddPhone
	UpdateClient *UpdateClient
	DeletePhone  *DeletePhone
	DeleteClient *DeleteClient
	FindClient   *FindClient
	GetClient    *GetClient
	ListClients  *ListClients
}

func NewDirectory(repo domain.Repository, dispatcher *audit.Dispatcher) *Directory {
	return &Directory{
		InitSchema:   NewInitSchema(repo),
		AddClient:    NewAddClient(repo, dispatcher),
		AddPhone:     NewAddPhone(repo, dispatcher),
		UpdateClient: NewUpdateClient(repo, dispatcher),
		DeletePhone:  NewDeletePhone(repo, dispatcher),
		DeleteClient: NewDeleteClient(repo, dispatcher),
		FindClient:   NewFindClient(repo),
		GetClient:    NewGetClient(repo),
		ListClients:  NewListClients(repo),
	}
}
