package dto

import "github.com/BruksfildServices01/client-directory/internal/models"

type CreateClientRequest struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Email     string   `json:"email" binding:"required"`
	Phones    []string `json:"phones"`
}

type PhoneChangeRequest struct {
	PhoneID uint   `json:"phone_id" binding:"required"`
	Number  string `json:"number" binding:"required"`
}

// UpdateClientRequest fields left out (or empty) are not changed.
type UpdateClientRequest struct {
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Email     string              `json:"email"`
	Phone     *PhoneChangeRequest `json:"phone"`
}

type AddPhoneRequest struct {
	Number string `json:"number" binding:"required"`
}

type SearchClientQuery struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
}

type ClientResponse struct {
	ID        uint            `json:"client_id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Phones    []PhoneResponse `json:"phones"`
}

type PhoneResponse struct {
	ID     uint   `json:"phone_id"`
	Number string `json:"number"`
}

func NewClientResponse(c *models.Client) ClientResponse {
	resp := ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phones:    make([]PhoneResponse, 0, len(c.Phones)),
	}
	for _, p := range c.Phones {
		resp.Phones = append(resp.Phones, NewPhoneResponse(&p))
	}
	return resp
}

func NewPhoneResponse(p *models.Phone) PhoneResponse {
	return PhoneResponse{ID: p.ID, Number: p.Number}
}

func NewClientListResponse(clients []models.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, NewClientResponse(&clients[i]))
	}
	return out
}
