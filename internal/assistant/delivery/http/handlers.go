package http

import (
	"github.com/gin-gonic/gin"

	"financial-assistant/pkg/response"
)

// CreateMessage godoc
// @Summary     Send a message to the assistant
// @Description Routes the message through the workflow and returns the assistant's reply. A session ID is generated when omitted.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body createMessageReq true "Message data"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) CreateMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMessageResp(output))
}
