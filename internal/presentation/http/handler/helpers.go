package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// paginationFromQuery reads page/per_page query params with defaults.
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			params.Page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := strconv.Atoi(pp); err == nil && parsed > 0 {
			params.PerPage = parsed
		}
	}
	params.Validate()
	return params
}

// parseUUIDQuery reads an optional UUID query param; malformed values
// are treated as absent.
func parseUUIDQuery(c *gin.Context, key string) *uuid.UUID {
	if s := c.Query(key); s != "" {
		if parsed, err := uuid.Parse(s); err == nil {
			return &parsed
		}
	}
	return nil
}

func parseEstimateStatus(s string) *enum.EstimateStatus {
	if s == "" {
		return nil
	}
	if parsed, ok := enum.ParseEstimateStatus(s); ok {
		return &parsed
	}
	return nil
}

func parseInquiryStatus(s string) *enum.InquiryStatus {
	if s == "" {
		return nil
	}
	if parsed, ok := enum.ParseInquiryStatus(s); ok {
		return &parsed
	}
	return nil
}

func parseTransactionStatus(s string) *enum.TransactionStatus {
	if s == "" {
		return nil
	}
	if parsed, ok := enum.ParseTransactionStatus(s); ok {
		return &parsed
	}
	return nil
}
