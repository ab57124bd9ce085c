package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processAddRoutineReq binds and validates the add routine request body.
func (h *handler) processAddRoutineReq(c *gin.Context) (addRoutineReq, error) {
	var req addRoutineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processToggleRoutineReq binds the toggle body and URI param.
func (h *handler) processToggleRoutineReq(c *gin.Context) (toggleRoutineReq, error) {
	var req toggleRoutineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processAddEmotionReq binds and validates the add emotion request body.
func (h *handler) processAddEmotionReq(c *gin.Context) (addEmotionReq, error) {
	var req addEmotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSendMessageReq binds the message body and contact URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ContactID = c.Param("id")
	if req.ContactID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processAnswerQuestionReq binds the answer body and question URI param.
func (h *handler) processAnswerQuestionReq(c *gin.Context) (answerQuestionReq, error) {
	var req answerQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.QuestionID = c.Param("id")
	if req.QuestionID == "" {
		return req, errMissingID
	}
	return req, nil
}
