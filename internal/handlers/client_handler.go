package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/dto"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/httpresp"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	dir *ucClient.Directory
}

func NewClientHandler(dir *ucClient.Directory) *ClientHandler {
	return &ClientHandler{dir: dir}
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	client, err := h.dir.AddClient.Execute(c.Request.Context(), ucClient.AddClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phones:    req.Phones,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewClientResponse(client))
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.dir.ListClients.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.NewClientListResponse(clients))
}

func (h *ClientHandler) Get(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.dir.GetClient.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewClientResponse(client))
}

// ======================================================
// SEARCH
// ======================================================

func (h *ClientHandler) Search(c *gin.Context) {
	var q dto.SearchClientQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	match, err := h.dir.FindClient.Execute(c.Request.Context(), domain.SearchCriteria{
		FirstName: q.FirstName,
		LastName:  q.LastName,
		Email:     q.Email,
		Phone:     q.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, match)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	changes := domain.Changes{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Phone != nil {
		changes.Phone = &domain.PhoneChange{
			PhoneID: req.Phone.PhoneID,
			Number:  req.Phone.Number,
		}
	}

	if err := h.dir.UpdateClient.Execute(c.Request.Context(), ucClient.UpdateClientInput{
		ClientID: clientID,
		Changes:  changes,
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.dir.DeleteClient.Execute(c.Request.Context(), clientID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
