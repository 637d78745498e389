package handler

import (
	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/response"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

func (s *SearchHandler) SearchFoods(c *gin.Context) {
	var req dto.FoodSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, cached, err := s.searchSvc.SearchFoods(c.Request.Context(), req.Normalize())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCached(c, result, cached)
}

func (s *SearchHandler) SearchPartners(c *gin.Context) {
	var req dto.PartnerSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, cached, err := s.searchSvc.SearchPartners(c.Request.Context(), req.Normalize())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCached(c, result, cached)
}

func (s *SearchHandler) Suggestions(c *gin.Context) {
	prefix := c.Query("q")
	kind := c.DefaultQuery("type", "all")

	result, err := s.searchSvc.Suggestions(c.Request.Context(), prefix, kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
