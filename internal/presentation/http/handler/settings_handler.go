package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yeonsoft/crm-api/internal/application/service"
	"github.com/yeonsoft/crm-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles the business profile settings page
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateProfileRequest represents the update business profile request body
type UpdateProfileRequest struct {
	RegistrationNumber *string `json:"registration_number"`
	BusinessName       *string `json:"business_name"`
	CEOName            *string `json:"ceo_name"`
	Address            *string `json:"address"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
}

// GetProfile handles reading the business profile
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	profile, err := h.settingsService.Profile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business profile retrieved successfully", profile)
}

// UpdateProfile handles updating the business profile
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		RegistrationNumber: req.RegistrationNumber,
		BusinessName:       req.BusinessName,
		CEOName:            req.CEOName,
		Address:            req.Address,
		Phone:              req.Phone,
		Email:              req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business profile updated successfully", profile)
}
