package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/campus-sathi/campus-sathi/app/logic/v1"
	"github.com/campus-sathi/campus-sathi/app/response"
	"github.com/campus-sathi/campus-sathi/pkg/types"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

// Chat runs one conversation turn.
func (s *HttpSrv) Chat(c *gin.Context) {
	var req types.TurnRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		s.fail(c, "chat", err)
		return
	}

	timer := s.Core.Metrics().ApiResponseTimer("chat")
	defer timer.ObserveDuration()

	result, err := v1.NewConversationLogic(c, s.Core).ProcessMessage(req)
	if err != nil {
		s.fail(c, "chat", err)
		return
	}

	response.APISuccess(c, result)
}

type WelcomeRequest struct {
	SessionToken      string `json:"session_token" form:"session_token"`
	PreferredLanguage string `json:"preferred_language" form:"preferred_language"`
	Platform          string `json:"platform" form:"platform"`
	ExternalUserID    string `json:"external_user_id" form:"external_user_id"`
}

// Welcome greets the caller and hands out a session token.
func (s *HttpSrv) Welcome(c *gin.Context) {
	var req WelcomeRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		s.fail(c, "welcome", err)
		return
	}

	result, err := v1.NewConversationLogic(c, s.Core).WelcomeMessage(types.TurnRequest{
		SessionToken:      req.SessionToken,
		PreferredLanguage: req.PreferredLanguage,
		Platform:          req.Platform,
		ExternalUserID:    req.ExternalUserID,
	})
	if err != nil {
		s.fail(c, "welcome", err)
		return
	}

	response.APISuccess(c, result)
}

type CloseSessionRequest struct {
	SessionToken string `json:"session_token" form:"session_token" binding:"required"`
}

func (s *HttpSrv) CloseSession(c *gin.Context) {
	var req CloseSessionRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		s.fail(c, "close_session", err)
		return
	}

	if err := v1.NewSessionLogic(c, s.Core).Close(req.SessionToken); err != nil {
		s.fail(c, "close_session", err)
		return
	}

	response.APISuccess(c, response.EmptyStruct{})
}
