package google

import (
	"context"
	"fmt"

	"github.com/harrisonrobin/sheetdash/pkg/auth"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewClient creates a read-only Sheets client for one spreadsheet. An API key
// is used when set, otherwise the stored OAuth token.
func NewClient(ctx context.Context, spreadsheetID, apiKey string, opts ...option.ClientOption) (*SheetsClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	if len(opts) == 0 {
		var err error
		opts, err = auth.ClientOptions(ctx, apiKey)
		if err != nil {
			return nil, err
		}
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Sheets client: %w", err)
	}
	return NewSheetsClient(srv, spreadsheetID), nil
}
