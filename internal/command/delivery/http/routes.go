package http

import (
	"github.com/gin-gonic/gin"

	"homestead-voice-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The command
// endpoint is rate-limited per client to absorb bursty recognition streams.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	voice := rg.Group("/voice")
	{
		voice.POST("/commands", mw.RateLimit(), h.Process)
		voice.GET("/projects/:id", mw.RateLimit(), h.DetailProject)
	}
}
