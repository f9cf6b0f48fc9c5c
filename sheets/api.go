package sheets

import "context"

// API is the subset of Client the CLI depends on.
type API interface {
	Get(ctx context.Context, spreadsheetID string, opts *GetOptions) (*Spreadsheet, error)
	GetValues(ctx context.Context, spreadsheetID, a1Range string, opts *GetValuesOptions) (*ValueRange, error)
	AppendValues(ctx context.Context, spreadsheetID string, values *ValueRange, opts *AppendOptions) (*AppendValuesResponse, error)
	ClearValues(ctx context.Context, spreadsheetID, a1Range string) (*ClearValuesResponse, error)
}

var _ API = (*Client)(nil)
