package http

import (
	"github.com/gin-gonic/gin"

	"homestead-voice-assistant/internal/model"
)

// processScope builds the request scope from trusted gateway headers.
func processScope(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		Username: c.GetHeader("X-Username"),
	}
	if sc.UserID == "" {
		sc.UserID = "anonymous"
	}
	return sc
}

// processProcessReq binds and validates the process command request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
