package http

import (
	"github.com/gin-gonic/gin"

	"homestead-voice-assistant/internal/command"
	pkgLog "homestead-voice-assistant/pkg/log"
)

// Handler is the public interface for the voice command HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	DetailProject(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for the voice command domain.
func New(l pkgLog.Logger, uc command.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
