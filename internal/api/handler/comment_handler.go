package handler

import (
	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/response"
	"reeldine/internal/pkg/util"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CommentCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.commentSvc.CreateComment(c.Request.Context(), subjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "comment posted", result)
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, limit := pageParams(c)
	result, err := s.commentSvc.ListComments(c.Request.Context(), foodID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.CommentUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.commentSvc.UpdateComment(c.Request.Context(), subjectID(c), commentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "comment updated", result)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.commentSvc.DeleteComment(c.Request.Context(), subjectID(c), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "comment deleted", nil)
}

func (s *CommentHandler) ToggleLike(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.commentSvc.ToggleCommentLike(c.Request.Context(), subjectID(c), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
