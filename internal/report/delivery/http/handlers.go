package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/middleware"
	"neuro-assist/internal/report"
	"neuro-assist/pkg/response"
)

// CompleteDay godoc
// @Summary     Complete the day
// @Description Synthesizes the end-of-day caregiver report and delivers it as a feedback message from the therapist. Each user-day can only be completed once.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         false "User ID (defaults to 'default')"
// @Param       body      body   completeDayReq false "Therapist selection"
// @Success     200 {object} completeDayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - day already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reports/complete-day [POST]
func (h *handler) CompleteDay(c *gin.Context) {
	ctx := c.Request.Context()

	var req completeDayReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	output, err := h.uc.CompleteDay(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteDay: %v", err)
		switch err {
		case report.ErrDayAlreadyCompleted:
			response.Conflict(c, err)
		case report.ErrUnknownTherapist:
			response.NotFound(c, err)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, h.newCompleteDayResp(output))
}
