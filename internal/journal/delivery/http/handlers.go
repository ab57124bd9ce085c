package http

import (
	"github.com/gin-gonic/gin"

	"neuro-assist/internal/journal"
	"neuro-assist/internal/middleware"
	"neuro-assist/pkg/response"
)

// AddRoutine godoc
// @Summary     Add a routine
// @Description Creates a new uncompleted routine for the user.
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "User ID (defaults to 'default')"
// @Param       body      body   addRoutineReq true  "Routine data"
// @Success     200 {object} routineItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/routines [POST]
func (h *handler) AddRoutine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddRoutineReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddRoutine(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddRoutine: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, routineItemResp{Routine: newRoutineResp(output.Routine)})
}

// ListRoutines godoc
// @Summary     List routines
// @Description Returns all routines for the user ordered by creation time.
// @Tags        Journal
// @Produce     json
// @Param       X-User-ID header string false "User ID (defaults to 'default')"
// @Success     200 {object} routineListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/routines [GET]
func (h *handler) ListRoutines(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListRoutines(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRoutines: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRoutineListResp(output))
}

// ToggleRoutine godoc
// @Summary     Toggle a routine
// @Description Marks a routine completed or uncompleted.
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           false "User ID (defaults to 'default')"
// @Param       id        path   string           true  "Routine ID"
// @Param       body      body   toggleRoutineReq true  "Completion state"
// @Success     200 {object} routineItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/routines/{id}/toggle [PATCH]
func (h *handler) ToggleRoutine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleRoutineReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleRoutine(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleRoutine: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, routineItemResp{Routine: newRoutineResp(output.Routine)})
}

// AddEmotion godoc
// @Summary     Log an emotion
// @Description Records an emotional state with optional intensity (1-5).
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "User ID (defaults to 'default')"
// @Param       body      body   addEmotionReq true  "Emotion data"
// @Success     200 {object} emotionItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/emotions [POST]
func (h *handler) AddEmotion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddEmotionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddEmotion(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddEmotion: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, emotionItemResp{Emotion: newEmotionResp(output.Emotion)})
}

// ListEmotions godoc
// @Summary     List emotions
// @Description Returns all logged emotions for the user.
// @Tags        Journal
// @Produce     json
// @Param       X-User-ID header string false "User ID (defaults to 'default')"
// @Success     200 {object} emotionListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/emotions [GET]
func (h *handler) ListEmotions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListEmotions(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEmotions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newEmotionListResp(output))
}

// Contacts godoc
// @Summary     List contacts
// @Description Returns the fixed contact directory.
// @Tags        Journal
// @Produce     json
// @Success     200 {object} contactListResp
// @Router      /api/v1/contacts [GET]
func (h *handler) Contacts(c *gin.Context) {
	response.OK(c, h.newContactListResp(h.uc.Contacts(c.Request.Context())))
}

// SendMessage godoc
// @Summary     Send a message
// @Description Appends a text message to the conversation with a contact.
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         false "User ID (defaults to 'default')"
// @Param       id        path   string         true  "Contact ID"
// @Param       body      body   sendMessageReq true  "Message text"
// @Success     200 {object} messageItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/contacts/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, messageItemResp{Message: newMessageResp(output.Message)})
}

// ListMessages godoc
// @Summary     List a conversation
// @Description Returns the conversation with a contact ordered by timestamp ascending.
// @Tags        Journal
// @Produce     json
// @Param       X-User-ID header string false "User ID (defaults to 'default')"
// @Param       id        path   string true  "Contact ID"
// @Success     200 {object} messageListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/contacts/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListMessages(ctx, middleware.ScopeFromContext(c), journal.ListMessagesInput{ContactID: c.Param("id")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newMessageListResp(output))
}

// AnswerQuestion godoc
// @Summary     Answer a daily question
// @Description Sets the answer of one of today's questions. Each question can be answered once.
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            false "User ID (defaults to 'default')"
// @Param       id        path   string            true  "Question ID"
// @Param       body      body   answerQuestionReq true  "Answer text"
// @Success     200 {object} questionItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already answered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/questions/{id}/answer [POST]
func (h *handler) AnswerQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnswerQuestionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AnswerQuestion(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnswerQuestion: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, questionItemResp{Question: newQuestionResp(output.Question)})
}
