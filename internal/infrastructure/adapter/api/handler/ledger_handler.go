package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler handles the ledger panels: view, create and select-then-edit
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetLedger handles GET /transactions
func (h *LedgerHandler) GetLedger(c *gin.Context) {
	view, err := h.ledger.GetLedgerView(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLedgerViewResponse(view))
}

// ListOptions handles GET /transactions/options
func (h *LedgerHandler) ListOptions(c *gin.Context) {
	options, err := h.ledger.ListOptions(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOptionResponses(options))
}

// GetEditForm handles GET /transactions/:id
func (h *LedgerHandler) GetEditForm(c *gin.Context) {
	id, ok := h.transactionID(c)
	if !ok {
		return
	}

	form, err := h.ledger.GetEditForm(c.Request.Context(), id)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEditFormResponse(form))
}

// CreateTransaction handles POST /transactions
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	tx, err := h.ledger.CreateTransaction(c.Request.Context(), req.ToInput())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	resp := dto.NewTransactionResponse(tx)
	c.Header("Location", fmt.Sprintf("/transactions/%d", tx.ID))
	c.JSON(http.StatusCreated, dto.SaveResponse{
		Message:     dto.SavedMessage,
		Transaction: &resp,
	})
}

// UpdateTransaction handles PUT /transactions/:id
func (h *LedgerHandler) UpdateTransaction(c *gin.Context) {
	id, ok := h.transactionID(c)
	if !ok {
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := h.ledger.UpdateTransaction(c.Request.Context(), id, req.ToInput()); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SaveResponse{Message: dto.SavedMessage})
}

// DeleteTransaction handles DELETE /transactions/:id
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	id, ok := h.transactionID(c)
	if !ok {
		return
	}

	if err := h.ledger.DeleteTransaction(c.Request.Context(), id); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// transactionID parses the :id path parameter
func (h *LedgerHandler) transactionID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		middleware.AbortWithError(c, domainerr.ErrInvalidTransactionID)
		return 0, false
	}
	return id, true
}

// bindRequest decodes the form body
func (h *LedgerHandler) bindRequest(c *gin.Context) (dto.TransactionRequest, bool) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid transaction request format", map[string]any{
			"error":      err.Error(),
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		middleware.AbortWithError(c, fmt.Errorf("%w: %v", domainerr.ErrInvalidRequest, err))
		return req, false
	}
	return req, true
}
