package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nifi-nlp-gateway/internal/query"
	"nifi-nlp-gateway/pkg/response"
)

// Process godoc
// @Summary     Process a natural language query
// @Description Resolves the query's intent, executes the matching NiFi operation, and records the interaction.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Query"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/query [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, query.ErrEmptyQuery) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Intents godoc
// @Summary     List supported intents
// @Description Returns the static catalog of supported intent tags with example queries.
// @Tags        Query
// @Produce     json
// @Success     200 {object} intentsResp
// @Router      /api/v1/intents [GET]
func (h *handler) Intents(c *gin.Context) {
	ctx := c.Request.Context()

	response.OK(c, h.newIntentsResp(h.uc.Intents(ctx)))
}

// Session godoc
// @Summary     Get session history
// @Description Returns the bounded interaction history for one session id.
// @Tags        Query
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Session(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, query.ErrSessionNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		h.l.Errorf(ctx, "uc.Session: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output.Record))
}
