package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/internal/presentation/http/dto/response"
	"github.com/yeonsoft/crm-api/pkg/money"
)

// TransactionHandler handles sales transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	ServiceType string    `json:"service_type" binding:"required"`
	Amount      money.KRW `json:"amount"`
	CustomerID  *string   `json:"customer_id"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
}

// List handles listing transactions with filtering
func (h *TransactionHandler) List(c *gin.Context) {
	params := &repository.TransactionFilterParams{
		Pagination: paginationFromQuery(c),
		Status:     parseTransactionStatus(c.Query("status")),
		CustomerID: parseUUIDQuery(c, "customer_id"),
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", transaction)
}

// Create handles creating a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var customerID *uuid.UUID
	if req.CustomerID != nil && *req.CustomerID != "" {
		parsed, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &parsed
	}

	status := enum.TransactionStatusPending
	if req.Status != "" {
		parsed, ok := enum.ParseTransactionStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid status: "+req.Status)
			return
		}
		status = parsed
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		date = parsed
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		ServiceType: req.ServiceType,
		Amount:      req.Amount,
		CustomerID:  customerID,
		Status:      status,
		Date:        date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction created successfully", transaction)
}

// UpdateStatus handles marking a transaction pending or completed
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := parseTransactionStatus(req.Status)
	if status == nil {
		response.BadRequest(c, "Invalid status: "+req.Status)
		return
	}

	transaction, err := h.transactionService.UpdateTransactionStatus(c.Request.Context(), id, *status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction status updated successfully", transaction)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SalesStats handles the sales board summary and monthly chart points
func (h *TransactionHandler) SalesStats(c *gin.Context) {
	overview, err := h.transactionService.GetSalesStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales stats retrieved successfully", overview)
}
