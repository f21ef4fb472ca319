package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gastonduartem/MILAN/internal/types"
)

const sheet = "Pedidos"

var columns = []struct {
	header string
	width  float64
}{
	{"Name", 28},
	{"Number", 10},
	{"Back text", 18},
	{"Size", 10},
	{"Created", 22},
}

// Orders builds the admin spreadsheet, one row per order in the given
// order (callers pass them number-ascending).
func Orders(orders []types.Order) (*excelize.File, error) {

	f := excelize.NewFile()

	err := f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return nil, fmt.Errorf("failed renaming sheet %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed creating header style %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, order := range orders {
		row := i + 2
		values := []any{
			order.RealName,
			order.Number,
			order.BackText,
			string(order.Size),
			order.CreatedAt.Format(time.RFC3339),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
