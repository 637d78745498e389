package handler

import (
	"reeldine/internal/pkg/response"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challengeSvc service.ChallengeService
}

func NewChallengeHandler(challengeSvc service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeSvc: challengeSvc}
}

func (s *ChallengeHandler) ListActive(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := s.challengeSvc.ListActive(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ChallengeHandler) Join(c *gin.Context) {
	challengeID, ok := pathID(c, "challenge_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.challengeSvc.Join(c.Request.Context(), subjectID(c), challengeID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "challenge joined", nil)
}
