package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ranilsonsilva664-collab/meu-controle-ia/internal/errors"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/pagination"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Vendor      string  `json:"vendor" binding:"max=200"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        *string `json:"date"`
	Category    string  `json:"category" binding:"required,tx_category"`
	Type        string  `json:"type" binding:"required,transaction_type"`
	ReceiptURL  string  `json:"receipt_url" binding:"omitempty,url"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new transaction (income or expense)
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := time.Now()
	if req.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date must be RFC3339"))
			return
		}
		date = parsed
	}

	transaction, err := h.transactionService.CreateTransaction(
		req.Description,
		req.Vendor,
		req.Amount,
		date,
		models.Category(req.Category),
		models.TransactionType(req.Type),
		req.ReceiptURL,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// listQuery holds the query parameters accepted by GetTransactions.
type listQuery struct {
	pagination.PageRequest
	From     *string `form:"from"`
	To       *string `form:"to"`
	Type     *string `form:"type" binding:"omitempty,transaction_type"`
	Category *string `form:"category" binding:"omitempty,tx_category"`
}

// GetTransactions lists transactions with optional filters
// @Summary     List transactions
// @Description List transactions ordered by date, newest first
// @Tags        transactions
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       type query string false "INCOME or EXPENSE"
// @Param       category query string false "Category filter"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.TransactionFilter
	if query.From != nil {
		from, err := time.Parse(time.RFC3339, *query.From)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be RFC3339"))
			return
		}
		filter.FromDate = &from
	}
	if query.To != nil {
		to, err := time.Parse(time.RFC3339, *query.To)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be RFC3339"))
			return
		}
		filter.ToDate = &to
	}
	if query.Type != nil {
		t := models.TransactionType(*query.Type)
		filter.Type = &t
	}
	if query.Category != nil {
		cat := models.Category(*query.Category)
		filter.Category = &cat
	}

	page, err := h.transactionService.GetTransactions(query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetTransactionByID returns one transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
