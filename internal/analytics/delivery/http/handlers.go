package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/analytics"
	"neuro-assist/internal/middleware"
	"neuro-assist/pkg/response"
)

// EmotionSummary godoc
// @Summary     Emotion distribution
// @Description Returns emotion buckets in first-seen order with the top-emotion insight narrative.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-ID header string false "User ID (defaults to 'default')"
// @Success     200 {object} emotionSummaryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/emotions [GET]
func (h *handler) EmotionSummary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.EmotionSummary(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.EmotionSummary: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newEmotionSummaryResp(output))
}

// RoutineAdherence godoc
// @Summary     Routine adherence series
// @Description Returns one completed/total stat per weekday; the current weekday is computed live.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-ID header string false "User ID (defaults to 'default')"
// @Success     200 {object} routineAdherenceResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/routines [GET]
func (h *handler) RoutineAdherence(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RoutineAdherence(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.RoutineAdherence: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newRoutineAdherenceResp(output))
}

// WellnessIndex godoc
// @Summary     Wellness index series
// @Description Blends conversation sentiment with routine adherence into one score per weekday.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-ID  header string false "User ID (defaults to 'default')"
// @Param       contact_id query  string true  "Conversation contact ID"
// @Success     200 {object} wellnessIndexResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/wellness [GET]
func (h *handler) WellnessIndex(c *gin.Context) {
	ctx := c.Request.Context()

	input := analytics.WellnessIndexInput{ContactID: c.Query("contact_id")}

	output, err := h.uc.WellnessIndex(ctx, middleware.ScopeFromContext(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.WellnessIndex: %v", err)
		switch err {
		case analytics.ErrEmptyContact:
			response.Error(c, err, nil)
		case analytics.ErrUnknownContact:
			response.NotFound(c, err)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, h.newWellnessIndexResp(output))
}
