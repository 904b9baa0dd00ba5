package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DirectoryRow is one employee line of an export, field values already
// flattened to strings by the caller.
type DirectoryRow struct {
	FullName   string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Role       string
	Department string
	HireDate   string
	Status     string
}

var directoryHeaders = []string{
	"Full Name", "First Name", "Last Name", "Email", "Phone", "Role", "Department", "Hire Date", "Status",
}

// BuildDirectoryWorkbook renders the employee directory into a workbook.
func BuildDirectoryWorkbook(rows []DirectoryRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	for i, header := range directoryHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	rowNum := 2
	for _, entry := range rows {
		values := []string{
			entry.FullName,
			entry.FirstName,
			entry.LastName,
			entry.Email,
			entry.Phone,
			entry.Role,
			entry.Department,
			entry.HireDate,
			entry.Status,
		}
		for i, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+i, rowNum)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", rowNum, err)
			}
		}
		rowNum++
	}

	return f, nil
}
