package handler

import (
	"strconv"

	"reeldine/internal/api/middleware"
	"reeldine/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

func subjectID(c *gin.Context) uint64 {
	return c.GetUint64(middleware.SubjectIDKey)
}

func pageParams(c *gin.Context) (page, limit int) {
	page = consts.DefaultPage
	limit = consts.DefaultPageSize
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if limit > consts.MaxPageSize {
		limit = consts.MaxPageSize
	}
	return page, limit
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
