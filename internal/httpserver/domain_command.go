package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	commandHTTP "homestead-voice-assistant/internal/command/delivery/http"
	"homestead-voice-assistant/internal/middleware"
)

func (srv HTTPServer) newMiddleware() middleware.Middleware {
	return middleware.New(srv.l, srv.rateLimit)
}

// setupCommandDomain registers the voice command routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupCommandDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := commandHTTP.New(srv.l, srv.commandUC)

	// Registers /api/v1/voice/commands and /api/v1/voice/projects/:id
	commandHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Voice command domain registered")
	return nil
}
