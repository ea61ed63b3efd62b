package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestead-voice-assistant/internal/command"
	"homestead-voice-assistant/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Unknown
// errors collapse to 500 without leaking internals.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, command.ErrEmptyTranscript):
		response.Error(c, err, nil)
	case errors.Is(err, command.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   command.ErrProjectNotFound.Error(),
		})
	default:
		response.InternalError(c, err)
	}
}
