package document

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
)

var estimateSheetHeaders = []string{
	"견적번호", "건명", "고객명", "상태", "발행일", "유효기간", "합계금액",
}

// WriteEstimatesXLSX writes the estimate list as a spreadsheet. Amounts
// are written as plain integers so they stay sortable in the sheet.
func WriteEstimatesXLSX(estimates []entity.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Estimates"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, header := range estimateSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, estimate := range estimates {
		customerName := ""
		if estimate.Customer != nil {
			customerName = estimate.Customer.Name
		}
		values := []interface{}{
			estimate.EstimateNum,
			estimate.Title,
			customerName,
			estimate.Status.String(),
			estimate.IssueDate.Format("2006-01-02"),
			estimate.ValidUntil.Format("2006-01-02"),
			int64(estimate.Amount),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "G", 18); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
