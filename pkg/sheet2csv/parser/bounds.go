package parser

import (
	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/models"
)

// DataArea returns the A1-anchored area that covers every non-empty cell.
// ok is false when rows hold no data at all.
func DataArea(rows [][]string) (area models.Area, ok bool) {
	maxRow, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return models.Area{}, false
	}
	return models.Area{R1: 1, C1: 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findDataBounds finds the last row and column holding a non-empty cell.
// Both are -1 for an empty grid.
func findDataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if rowIdx > maxRow {
					maxRow = rowIdx
				}
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// UnionArea returns the smallest A1-anchored area covering a and b.
func UnionArea(a, b models.Area) models.Area {
	return models.Area{
		R1: 1,
		C1: 1,
		R2: max(a.R2, b.R2),
		C2: max(a.C2, b.C2),
	}
}

// Rectangularize pads or cuts rows so the result has exactly area.R2 rows of
// exactly area.C2 cells. Missing cells become empty strings.
func Rectangularize(rows [][]string, area models.Area) [][]string {
	if area.R2 <= 0 || area.C2 <= 0 {
		return [][]string{}
	}

	grid := make([][]string, area.R2)
	for r := range grid {
		line := make([]string, area.C2)
		if r < len(rows) {
			copy(line, rows[r])
		}
		grid[r] = line
	}
	return grid
}
