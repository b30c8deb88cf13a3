package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/internal/presentation/http/dto/response"
)

// InquiryHandler handles inquiry board HTTP requests
type InquiryHandler struct {
	inquiryService *service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryService *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// CreateInquiryRequest represents the create inquiry request body
type CreateInquiryRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	AuthorName string  `json:"author_name" binding:"required"`
	CustomerID *string `json:"customer_id"`
	Type       string  `json:"type"`
}

// List handles listing inquiries with filtering
func (h *InquiryHandler) List(c *gin.Context) {
	params := &repository.InquiryFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Status:     parseInquiryStatus(c.Query("status")),
		CustomerID: parseUUIDQuery(c, "customer_id"),
	}

	result, err := h.inquiryService.ListInquiries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inquiries retrieved successfully", result)
}

// Get handles getting a single inquiry
func (h *InquiryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inquiry ID")
		return
	}

	inquiry, err := h.inquiryService.GetInquiry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inquiry retrieved successfully", inquiry)
}

// Create handles creating an inquiry
func (h *InquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
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

	inquiry, err := h.inquiryService.CreateInquiry(c.Request.Context(), &service.CreateInquiryInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorName: req.AuthorName,
		CustomerID: customerID,
		Type:       req.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inquiry created successfully", inquiry)
}

// UpdateStatus handles moving an inquiry between states
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inquiry ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := parseInquiryStatus(req.Status)
	if status == nil {
		response.BadRequest(c, "Invalid status: "+req.Status)
		return
	}

	inquiry, err := h.inquiryService.UpdateInquiryStatus(c.Request.Context(), id, *status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inquiry status updated successfully", inquiry)
}

// Delete handles deleting an inquiry
func (h *InquiryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inquiry ID")
		return
	}

	if err := h.inquiryService.DeleteInquiry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Stats handles the inquiry board summary cards
func (h *InquiryHandler) Stats(c *gin.Context) {
	stats, err := h.inquiryService.GetInquiryStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inquiry stats retrieved successfully", stats)
}
