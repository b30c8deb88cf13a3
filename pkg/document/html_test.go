package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
)

func sampleEstimate() *entity.Estimate {
	spec := "반응형"
	company := "길동상사"
	return &entity.Estimate{
		EstimateNum: "EST-2026-1001",
		Title:       "홈페이지 제작",
		BizNumber:   "123-45-67890",
		BizName:     "연소프트",
		BizCEO:      "김연수",
		Amount:      2750000,
		IssueDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		ValidUntil:  time.Date(2026, 9, 29, 0, 0, 0, 0, time.Local),
		Customer:    &entity.Customer{Name: "홍길동", Company: &company},
		Items: []entity.EstimateItem{
			{ItemName: "디자인", Spec: &spec, Quantity: 2, UnitPrice: 1000000, SupplyValue: 2000000, VAT: 200000},
			{ItemName: "퍼블리싱", Quantity: 1, UnitPrice: 500000, SupplyValue: 500000, VAT: 50000},
		},
	}
}

func TestRenderEstimate(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	html, err := renderer.RenderEstimate(sampleEstimate())
	require.NoError(t, err)

	assert.Contains(t, html, "EST-2026-1001")
	assert.Contains(t, html, "홍길동")
	assert.Contains(t, html, "길동상사")
	assert.Contains(t, html, "2,000,000")
	assert.Contains(t, html, "2,750,000")
	assert.Contains(t, html, "2026-08-30")
	assert.Contains(t, html, "견적서")
}

func TestWriteEstimatesXLSX(t *testing.T) {
	data, err := WriteEstimatesXLSX([]entity.Estimate{*sampleEstimate()})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
