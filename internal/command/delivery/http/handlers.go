package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestead-voice-assistant/pkg/response"
)

// Process godoc
// @Summary     Process a voice command
// @Description Interprets a final speech transcript, creates the matching record and returns a confirmation.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Final transcript with optional ambient project and voice"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Project Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/commands [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// DetailProject godoc
// @Summary     Get an ambient project
// @Description Returns the project a client is about to speak inside of.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} detailProjectResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/projects/{id} [GET]
func (h *handler) DetailProject(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	project, err := h.uc.DetailProject(ctx, processScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailProject: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailProjectResp(project))
}
