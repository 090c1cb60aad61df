package handler

import (
	"net/http"

	"propquery/internal/apperr"
	"propquery/internal/model"
	"propquery/internal/service"

	"github.com/gin-gonic/gin"
)

// QueryHandler handles query-parsing HTTP requests
type QueryHandler struct {
	queryService *service.QueryService
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryService *service.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// Parse handles POST /api/v1/query/parse
func (h *QueryHandler) Parse(c *gin.Context) {
	var req model.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.InvalidArgument("query must be a non-empty string: %v", err))
		return
	}

	response, err := h.queryService.Parse(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// respondError writes err as an ErrorResponse with its mapped status
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus(), model.ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}
