package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-directory/internal/dto"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/httpresp"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

type PhoneHandler struct {
	dir *ucClient.Directory
}

func NewPhoneHandler(dir *ucClient.Directory) *PhoneHandler {
	return &PhoneHandler{dir: dir}
}

func (h *PhoneHandler) Create(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	phone, err := h.dir.AddPhone.Execute(c.Request.Context(), ucClient.AddPhoneInput{
		ClientID: clientID,
		Number:   req.Number,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewPhoneResponse(phone))
}

// Delete answers 204 even when the phone does not belong to the client.
func (h *PhoneHandler) Delete(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	phoneID, ok := pathID(c, "phoneId")
	if !ok {
		return
	}

	if _, err := h.dir.DeletePhone.Execute(c.Request.Context(), ucClient.DeletePhoneInput{
		ClientID: clientID,
		PhoneID:  phoneID,
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
