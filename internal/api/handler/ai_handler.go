package handler

import (
	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/response"
	"reeldine/internal/pkg/util"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiSvc service.AIService
}

func NewAIHandler(aiSvc service.AIService) *AIHandler {
	return &AIHandler{aiSvc: aiSvc}
}

func (s *AIHandler) SuggestRecipes(c *gin.Context) {
	var req dto.RecipeSuggestionRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.aiSvc.SuggestRecipes(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AIHandler) Status(c *gin.Context) {
	response.Success(c, s.aiSvc.Status())
}
