package export

import (
	"fmt"

	"github.com/vaibhavharit14/BudgetBox/internal/client/store"

	"github.com/xuri/excelize/v2"
)

// ToXLSX writes the draft as an XLSX workbook at path: one sheet with a
// field/value row per budget field.
func ToXLSX(d store.Draft, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Budget"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	f.SetCellValue(sheetName, "A1", "Field")
	f.SetCellValue(sheetName, "B1", "Value")

	for i, name := range store.FieldNames {
		row := i + 2
		value, _ := d.Field(name)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
	}

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "B", 40)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
