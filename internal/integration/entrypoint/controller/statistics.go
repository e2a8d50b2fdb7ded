// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debtnet/backend/internal/application/usecase/debt"
	domainerror "github.com/debtnet/backend/internal/domain/error"
	"github.com/debtnet/backend/internal/integration/entrypoint/dto"
	"github.com/debtnet/backend/internal/integration/entrypoint/middleware"
)

// StatisticsController handles the aggregated statistics endpoint.
type StatisticsController struct {
	statisticsUseCase *debt.GetStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(statisticsUseCase *debt.GetStatisticsUseCase) *StatisticsController {
	return &StatisticsController{
		statisticsUseCase: statisticsUseCase,
	}
}

// Get handles GET /statistics requests.
func (c *StatisticsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.statisticsUseCase.Execute(ctx.Request.Context(), debt.GetStatisticsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatisticsResponse(output))
}
