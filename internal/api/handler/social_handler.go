package handler

import (
	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/response"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialSvc service.SocialService
}

func NewSocialHandler(socialSvc service.SocialService) *SocialHandler {
	return &SocialHandler{socialSvc: socialSvc}
}

func (s *SocialHandler) Follow(c *gin.Context) {
	partnerID, ok := pathID(c, "partner_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.socialSvc.Follow(c.Request.Context(), subjectID(c), partnerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "partner followed", result)
}

func (s *SocialHandler) Unfollow(c *gin.Context) {
	partnerID, ok := pathID(c, "partner_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.socialSvc.Unfollow(c.Request.Context(), subjectID(c), partnerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "partner unfollowed", result)
}

func (s *SocialHandler) FollowStatus(c *gin.Context) {
	partnerID, ok := pathID(c, "partner_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.socialSvc.FollowStatus(c.Request.Context(), subjectID(c), partnerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// userOrSubject resolves the user id from the path, falling back to the
// signed-in subject.
func userOrSubject(c *gin.Context) uint64 {
	if id, ok := pathID(c, "user_id"); ok {
		return id
	}
	return subjectID(c)
}

func (s *SocialHandler) ListFollowing(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := s.socialSvc.ListFollowing(c.Request.Context(), userOrSubject(c), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *SocialHandler) ListFollowers(c *gin.Context) {
	partnerID, ok := pathID(c, "partner_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, limit := pageParams(c)
	result, err := s.socialSvc.ListFollowers(c.Request.Context(), partnerID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *SocialHandler) Stats(c *gin.Context) {
	result, err := s.socialSvc.SocialStats(c.Request.Context(), userOrSubject(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *SocialHandler) UpdatePreferences(c *gin.Context) {
	var req dto.PreferencesUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	prefs, err := s.socialSvc.UpdatePreferences(c.Request.Context(), subjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "preferences updated", prefs)
}
