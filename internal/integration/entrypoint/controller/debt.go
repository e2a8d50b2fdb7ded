// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtnet/backend/internal/application/usecase/debt"
	"github.com/debtnet/backend/internal/domain/entity"
	domainerror "github.com/debtnet/backend/internal/domain/error"
	"github.com/debtnet/backend/internal/integration/entrypoint/dto"
	"github.com/debtnet/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt ledger endpoints.
type DebtController struct {
	listUseCase          *debt.ListDebtsUseCase
	getUseCase           *debt.GetDebtUseCase
	createUseCase        *debt.CreateDebtUseCase
	updateUseCase        *debt.UpdateDebtUseCase
	deleteUseCase        *debt.DeleteDebtUseCase
	deleteAllUseCase     *debt.DeleteAllDebtsUseCase
	recordPaymentUseCase *debt.RecordPaymentUseCase
	setPaidUseCase       *debt.SetPaidStatusUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	getUseCase *debt.GetDebtUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	deleteAllUseCase *debt.DeleteAllDebtsUseCase,
	recordPaymentUseCase *debt.RecordPaymentUseCase,
	setPaidUseCase *debt.SetPaidStatusUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		deleteAllUseCase:     deleteAllUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
		setPaidUseCase:       setPaidUseCase,
	}
}

// List handles GET /debts requests. The active=true query parameter
// restricts the result to unpaid debts.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	input := debt.ListDebtsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), debt.GetDebtInput{
		DebtID: debtID,
		UserID: userID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	interestRate := decimal.Zero
	if req.InterestRate != "" {
		interestRate, err = decimal.NewFromString(req.InterestRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid interest rate format",
				Code:  string(domainerror.ErrCodeInvalidInterestRate),
			})
			return
		}
	}

	input := debt.CreateDebtInput{
		UserID:       userID,
		DebtorName:   req.DebtorName,
		Description:  req.Description,
		Amount:       amount,
		InterestRate: interestRate,
		Category:     entity.DebtCategory(req.Category),
		Type:         entity.DebtType(req.Type),
		DueDate:      req.DueDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PATCH /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	input := debt.UpdateDebtInput{
		DebtID:       debtID,
		UserID:       userID,
		DebtorName:   req.DebtorName,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.InterestRate != nil {
		rate, err := decimal.NewFromString(*req.InterestRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid interest rate format",
				Code:  string(domainerror.ErrCodeInvalidInterestRate),
			})
			return
		}
		input.InterestRate = &rate
	}

	if req.Category != nil {
		category := entity.DebtCategory(*req.Category)
		input.Category = &category
	}

	if req.Type != nil {
		debtType := entity.DebtType(*req.Type)
		input.Type = &debtType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests. Deleting an unknown debt
// succeeds, so repeated deletes are safe.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		DebtID: debtID,
		UserID: userID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteAll handles DELETE /debts requests, clearing the user's ledger.
func (c *DebtController) DeleteAll(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	_, err := c.deleteAllUseCase.Execute(ctx.Request.Context(), debt.DeleteAllDebtsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RecordPayment handles POST /debts/:id/payments requests.
func (c *DebtController) RecordPayment(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), debt.RecordPaymentInput{
		DebtID: debtID,
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// SetPaid handles PUT /debts/:id/paid requests.
func (c *DebtController) SetPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthenticated(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.SetPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Paid == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	output, err := c.setPaidUseCase.Execute(ctx.Request.Context(), debt.SetPaidStatusInput{
		DebtID: debtID,
		UserID: userID,
		Paid:   *req.Paid,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// unauthenticated writes the shared missing-authentication response.
func (c *DebtController) unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		statusCode := c.getStatusCodeForDebtError(debtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedDebtAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeEmptyDebtorName,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidInterestRate,
		domainerror.ErrCodeInvalidDebtCategory,
		domainerror.ErrCodeInvalidDebtType,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodePaymentExceedsBalance,
		domainerror.ErrCodeMissingDebtFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
