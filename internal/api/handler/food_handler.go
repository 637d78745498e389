package handler

import (
	"strconv"

	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/response"
	"reeldine/internal/pkg/util"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	foodSvc service.FoodService
}

func NewFoodHandler(foodSvc service.FoodService) *FoodHandler {
	return &FoodHandler{foodSvc: foodSvc}
}

func (s *FoodHandler) CreateFood(c *gin.Context) {
	var req dto.FoodCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.foodSvc.CreateFood(c.Request.Context(), subjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "food posted", result)
}

func (s *FoodHandler) GetFood(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.foodSvc.GetFood(c.Request.Context(), foodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FoodHandler) DeleteFood(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.foodSvc.DeleteFood(c.Request.Context(), subjectID(c), foodID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "food deleted", nil)
}

func (s *FoodHandler) ListFoods(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := s.foodSvc.ListFoods(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FoodHandler) Trending(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 || limit > 50 {
		limit = 10
	}
	result, err := s.foodSvc.Trending(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FoodHandler) TrackView(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.foodSvc.TrackView(c.Request.Context(), foodID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FoodHandler) ToggleLike(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.foodSvc.ToggleLike(c.Request.Context(), subjectID(c), foodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FoodHandler) ToggleSave(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.foodSvc.ToggleSave(c.Request.Context(), subjectID(c), foodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FoodHandler) ListSaved(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := s.foodSvc.ListSaved(c.Request.Context(), subjectID(c), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
