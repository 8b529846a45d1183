package service

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	enrollModel "summerschool_backend/internals/features/enrollments/model"
)

const SheetName = "Enrollments"

var exportHeader = []any{"Enrollment ID", "Email", "Class ID", "Class", "Price", "Transaction ID", "Enrolled At"}

// BuildWorkbook renders the records as a one-sheet xlsx file.
func BuildWorkbook(records []enrollModel.EnrollmentModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[ERROR] closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		row := []any{
			r.ID.String(),
			r.Email,
			r.ClassID.String(),
			r.Name,
			r.Price,
			r.TransactionID,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "G", 22); err != nil {
		return nil, fmt.Errorf("col width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
