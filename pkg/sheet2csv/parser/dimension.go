package parser

import (
	"strings"

	"github.com/ukaji3/sheet2csv-go/pkg/sheet2csv/models"
	"github.com/xuri/excelize/v2"
)

// ParseDimension parses a worksheet dimension reference such as "A1:D10" or
// "$B$2:$F$9". Single-cell references return ok=false: spreadsheet writers
// emit "A1" for empty sheets, so they say nothing about the used range.
func ParseDimension(ref string) (models.Area, bool) {
	area := parseRangeToArea(strings.TrimSpace(ref))
	if area == nil {
		return models.Area{}, false
	}
	if area.R1 == area.R2 && area.C1 == area.C2 {
		return models.Area{}, false
	}
	return *area, true
}

// parseRangeToArea parses a range string like $A$1:$D$10 to Area.
func parseRangeToArea(rangeStr string) *models.Area {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
}

// UsedArea combines the data extent of rows with the declared dimension ref.
// ok is false when neither yields a non-empty area.
func UsedArea(rows [][]string, dimension string) (models.Area, bool) {
	data, hasData := DataArea(rows)
	dim, hasDim := ParseDimension(dimension)
	switch {
	case hasData && hasDim:
		return UnionArea(data, dim), true
	case hasData:
		return data, true
	case hasDim:
		return UnionArea(models.Area{}, dim), true
	default:
		return models.Area{}, false
	}
}
