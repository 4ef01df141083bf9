package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// SheetsClient reads value grids from one spreadsheet.
type SheetsClient struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewSheetsClient wraps an existing Sheets service.
func NewSheetsClient(srv *sheets.Service, spreadsheetID string) *SheetsClient {
	return &SheetsClient{srv: srv, spreadsheetID: spreadsheetID}
}

// Grid fetches sheet!readRange as text cells. A sheet with no values yields
// an empty grid, not an error.
func (c *SheetsClient) Grid(ctx context.Context, sheet, readRange string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, A1(sheet, readRange)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read %s!%s: %w", sheet, readRange, err)
	}
	return toText(resp.Values), nil
}

// Sheets lists the tabs of the spreadsheet.
func (c *SheetsClient) Sheets(ctx context.Context) ([]string, error) {
	ss, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve spreadsheet %s: %w", c.spreadsheetID, err)
	}
	titles := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// A1 builds a quoted A1 range such as 'System Development'!A:M.
func A1(sheet, readRange string) string {
	if sheet == "" {
		return readRange
	}
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if readRange == "" {
		return quoted
	}
	return quoted + "!" + readRange
}

func toText(values [][]interface{}) [][]string {
	grid := make([][]string, len(values))
	for i, row := range values {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				grid[i][j] = s
			} else {
				grid[i][j] = fmt.Sprint(v)
			}
		}
	}
	return grid
}
