package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/assistant"
	"neuro-assist/internal/middleware"
	"neuro-assist/pkg/response"
)

// ProcessTranscript godoc
// @Summary     Classify a transcript
// @Description Classifies a spoken/written transcript into a structured action and persists the derived record. Classification never fails; service outages route to a deterministic local fallback.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "User ID (defaults to 'default')"
// @Param       body      body   transcriptReq true  "Transcript"
// @Success     200 {object} transcriptResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/transcript [POST]
func (h *handler) ProcessTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTranscript(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTranscript: %v", err)
		if err == assistant.ErrEmptyTranscript {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// DailyQuestions godoc
// @Summary     Today's check-in questions
// @Description Returns the user's daily question set, generating it on first access. A day's set is never regenerated.
// @Tags        Assistant
// @Produce     json
// @Param       X-User-ID header string false "User ID (defaults to 'default')"
// @Success     200 {object} questionListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/questions [GET]
func (h *handler) DailyQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DailyQuestions(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.DailyQuestions: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newQuestionListResp(output.Questions))
}
