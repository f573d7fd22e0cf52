package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

// ClientMemoryRepository keeps the directory in process memory. It
// enforces the phones foreign key like the Postgres schema and backs
// tests and the "memory" store.
type ClientMemoryRepository struct {
	mu         sync.RWMutex
	clients    map[uint]models.Client
	phones     map[uint]models.Phone
	nextClient uint
	nextPhone  uint
}

func NewClientMemoryRepository() *ClientMemoryRepository {
	return &ClientMemoryRepository{
		clients: make(map[uint]models.Client),
		phones:  make(map[uint]models.Phone),
	}
}

func (r *ClientMemoryRepository) EnsureSchema(ctx context.Context) error {
	return nil
}

func (r *ClientMemoryRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextClient++
	client.ID = r.nextClient
	r.clients[client.ID] = models.Client{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
	}

	for i := range client.Phones {
		r.nextPhone++
		client.Phones[i].ID = r.nextPhone
		client.Phones[i].ClientID = client.ID
		r.phones[r.nextPhone] = client.Phones[i]
	}

	return nil
}

func (r *ClientMemoryRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[clientID]
	if !ok {
		return nil, httperr.NotFoundError(fmt.Sprintf("client %d not found", clientID))
	}
	c.Phones = r.phonesOf(clientID)
	return &c, nil
}

func (r *ClientMemoryRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]models.Client, 0, len(r.clients))
	for id, c := range r.clients {
		c.Phones = r.phonesOf(id)
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })

	return clients, nil
}

func (r *ClientMemoryRepository) UpdateClient(
	ctx context.Context,
	clientID uint,
	changes domain.Changes,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[clientID]
	if cols := changes.Columns(); len(cols) > 0 && !ok {
		return httperr.NotFoundError(fmt.Sprintf("client %d not found", clientID))
	}

	var phone models.Phone
	if changes.Phone != nil {
		phone, ok = r.phones[changes.Phone.PhoneID]
		if !ok || phone.ClientID != clientID {
			return httperr.NotFoundError(fmt.Sprintf(
				"phone %d not found for client %d", changes.Phone.PhoneID, clientID,
			))
		}
	}

	// apply only after every check passed, like a rolled back transaction
	if changes.FirstName != "" {
		c.FirstName = changes.FirstName
	}
	if changes.LastName != "" {
		c.LastName = changes.LastName
	}
	if changes.Email != "" {
		c.Email = changes.Email
	}
	if len(changes.Columns()) > 0 {
		r.clients[clientID] = c
	}
	if changes.Phone != nil {
		phone.Number = changes.Phone.Number
		r.phones[phone.ID] = phone
	}

	return nil
}

func (r *ClientMemoryRepository) DeleteClient(
	ctx context.Context,
	clientID uint,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.phones {
		if p.ClientID == clientID {
			delete(r.phones, id)
		}
	}

	if _, ok := r.clients[clientID]; !ok {
		return 0, nil
	}
	delete(r.clients, clientID)
	return 1, nil
}

func (r *ClientMemoryRepository) AddPhone(
	ctx context.Context,
	phone *models.Phone,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[phone.ClientID]; !ok {
		return httperr.BusinessError{
			Code:    httperr.CodeConstraintViolation,
			Message: "foreign key violation",
			Err:     fmt.Errorf("client %d does not exist", phone.ClientID),
		}
	}

	r.nextPhone++
	phone.ID = r.nextPhone
	r.phones[phone.ID] = *phone
	return nil
}

func (r *ClientMemoryRepository) DeletePhone(
	ctx context.Context,
	clientID uint,
	phoneID uint,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.phones[phoneID]
	if !ok || p.ClientID != clientID {
		return 0, nil
	}
	delete(r.phones, phoneID)
	return 1, nil
}

func (r *ClientMemoryRepository) FindClient(
	ctx context.Context,
	field domain.Field,
	value string,
) (*models.ClientMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := searchColumns[field]; !ok {
		return nil, httperr.InvalidArgument(fmt.Sprintf("unknown search field %q", field))
	}

	ids := make([]uint, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		c := r.clients[id]
		for _, p := range r.phonesOf(id) {
			if matchesField(c, p, field, value) {
				return &models.ClientMatch{
					ClientID:  c.ID,
					FirstName: c.FirstName,
					LastName:  c.LastName,
					Email:     c.Email,
					PhoneID:   p.ID,
					Number:    p.Number,
				}, nil
			}
		}
	}

	return nil, httperr.NotFoundError(fmt.Sprintf("no client with %s %q", field, value))
}

// phonesOf must be called with the lock held. The result is never nil,
// matching a gorm preload with no rows.
func (r *ClientMemoryRepository) phonesOf(clientID uint) []models.Phone {
	phones := make([]models.Phone, 0)
	for _, p := range r.phones {
		if p.ClientID == clientID {
			phones = append(phones, p)
		}
	}
	sort.Slice(phones, func(i, j int) bool { return phones[i].ID < phones[j].ID })
	return phones
}

func matchesField(c models.Client, p models.Phone, field domain.Field, value string) bool {
	switch field {
	case domain.FieldFirstName:
		return c.FirstName == value
	case domain.FieldLastName:
		return c.LastName == value
	case domain.FieldEmail:
		return c.Email == value
	case domain.FieldPhone:
		return p.Number == value
	}
	return false
}

var _ domain.Repository = (*ClientMemoryRepository)(nil)
