package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/internal/presentation/http/dto/response"
	"github.com/yeonsoft/crm-api/pkg/document"
	"github.com/yeonsoft/crm-api/pkg/money"
)

// EstimateHandler handles estimate-related HTTP requests
type EstimateHandler struct {
	estimateService *service.EstimateService
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(estimateService *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

// EstimateItemRequest represents a line item in the request body.
// SupplyValue is sent only when the operator edited it directly.
type EstimateItemRequest struct {
	ItemName    string     `json:"item_name"`
	Spec        *string    `json:"spec"`
	Quantity    int        `json:"quantity"`
	UnitPrice   money.KRW  `json:"unit_price"`
	SupplyValue *money.KRW `json:"supply_value"`
}

// BusinessSnapshotRequest carries per-estimate issuer overrides
type BusinessSnapshotRequest struct {
	Number  string `json:"number"`
	Name    string `json:"name"`
	CEO     string `json:"ceo"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// EstimateRequest represents the create/update estimate request body
type EstimateRequest struct {
	Title      string                   `json:"title"`
	CustomerID string                   `json:"customer_id"`
	Business   *BusinessSnapshotRequest `json:"business"`
	Items      []EstimateItemRequest    `json:"items"`
}

func (r *EstimateRequest) toItems() []service.EstimateItemInput {
	items := make([]service.EstimateItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = service.EstimateItemInput{
			ItemName:    item.ItemName,
			Spec:        item.Spec,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SupplyValue: item.SupplyValue,
		}
	}
	return items
}

func (r *EstimateRequest) toBusiness() *service.BusinessSnapshotInput {
	if r.Business == nil {
		return nil
	}
	return &service.BusinessSnapshotInput{
		Number:  r.Business.Number,
		Name:    r.Business.Name,
		CEO:     r.Business.CEO,
		Address: r.Business.Address,
		Phone:   r.Business.Phone,
		Email:   r.Business.Email,
	}
}

// List handles listing estimates with optional search and status filter
func (h *EstimateHandler) List(c *gin.Context) {
	params := &repository.EstimateFilterParams{
		Search: c.Query("search"),
		Status: parseEstimateStatus(c.Query("status")),
	}
	if customerID := parseUUIDQuery(c, "customer_id"); customerID != nil {
		params.CustomerID = customerID
	}

	estimates, err := h.estimateService.ListEstimates(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimates retrieved successfully", estimates)
}

// Get handles getting a single estimate with its items
func (h *EstimateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	estimate, err := h.estimateService.GetEstimate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate retrieved successfully", estimate)
}

// Create handles creating an estimate
func (h *EstimateHandler) Create(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	estimate, err := h.estimateService.CreateEstimate(c.Request.Context(), &service.CreateEstimateInput{
		Title:      req.Title,
		CustomerID: customerID,
		Business:   req.toBusiness(),
		Items:      req.toItems(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Estimate created successfully", estimate)
}

// Update handles a full-replace estimate update
func (h *EstimateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	estimate, err := h.estimateService.UpdateEstimate(c.Request.Context(), &service.UpdateEstimateInput{
		ID:         id,
		Title:      req.Title,
		CustomerID: customerID,
		Business:   req.toBusiness(),
		Items:      req.toItems(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate updated successfully", estimate)
}

// Delete handles deleting an estimate and its items
func (h *EstimateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	if err := h.estimateService.DeleteEstimate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Stats handles the estimate board summary cards
func (h *EstimateHandler) Stats(c *gin.Context) {
	stats, err := h.estimateService.GetEstimateStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate stats retrieved successfully", stats)
}

// UpdateStatusRequest represents the status transition request body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles an estimate document-state transition
func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := parseEstimateStatus(req.Status)
	if status == nil {
		response.BadRequest(c, "Invalid status: "+req.Status)
		return
	}

	if err := h.estimateService.UpdateEstimateStatus(c.Request.Context(), id, *status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate status updated successfully", nil)
}

// SendRequest represents the send estimate request body
type SendRequest struct {
	To string `json:"to" binding:"required,email"`
}

// Send handles emailing the rendered estimate document
func (h *EstimateHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.estimateService.SendEstimate(c.Request.Context(), id, req.To); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate sent successfully", nil)
}

// Document handles serving the printable HTML document
func (h *EstimateHandler) Document(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid estimate ID")
		return
	}

	html, err := h.estimateService.RenderEstimateDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Export handles downloading the estimate list as a spreadsheet
func (h *EstimateHandler) Export(c *gin.Context) {
	params := &repository.EstimateFilterParams{
		Search: c.Query("search"),
		Status: parseEstimateStatus(c.Query("status")),
	}

	estimates, err := h.estimateService.ListEstimates(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := document.WriteEstimatesXLSX(estimates)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("estimates-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
