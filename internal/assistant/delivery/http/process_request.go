package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateMessageReq binds and validates the create message request body.
func (h *handler) processCreateMessageReq(c *gin.Context) (createMessageReq, error) {
	var req createMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
