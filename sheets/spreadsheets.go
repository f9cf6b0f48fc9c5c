package sheets

import (
	"context"
	"errors"

	"github.com/s0up4200/clientele/rest"
)

// Create creates a spreadsheet. SpreadsheetID is assigned by the server
// and ignored if set.
func (c *Client) Create(ctx context.Context, spreadsheet *Spreadsheet) (*Spreadsheet, error) {
	if spreadsheet == nil {
		spreadsheet = &Spreadsheet{}
	}
	body := *spreadsheet
	body.SpreadsheetID = ""

	var out Spreadsheet
	if err := c.rest.Post(ctx, "/v4/spreadsheets", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get gets a spreadsheet. Grid data is only returned when
// opts.IncludeGridData is set.
func (c *Client) Get(ctx context.Context, spreadsheetID string, opts *GetOptions) (*Spreadsheet, error) {
	path, err := spreadsheetPath(spreadsheetID, "")
	if err != nil {
		return nil, err
	}

	q := rest.NewQuery()
	if opts != nil {
		q.Strings("ranges", opts.Ranges).Bool("includeGridData", opts.IncludeGridData)
	}

	var out Spreadsheet
	if err := c.rest.Get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByDataFilter gets the parts of a spreadsheet matched by filters.
func (c *Client) GetByDataFilter(ctx context.Context, spreadsheetID string, filters []DataFilter, includeGridData bool) (*Spreadsheet, error) {
	path, err := spreadsheetPath(spreadsheetID, ":getByDataFilter")
	if err != nil {
		return nil, err
	}

	body := struct {
		DataFilters     []DataFilter `json:"dataFilters"`
		IncludeGridData bool         `json:"includeGridData,omitempty"`
	}{filters, includeGridData}

	var out Spreadsheet
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchUpdate applies the requests atomically: if any request fails,
// none is applied. Replies line up with req.Requests.
func (c *Client) BatchUpdate(ctx context.Context, spreadsheetID string, req *BatchUpdateRequest) (*BatchUpdateResponse, error) {
	if req == nil || len(req.Requests) == 0 {
		return nil, errors.New("batch update needs at least one request")
	}

	path, err := spreadsheetPath(spreadsheetID, ":batchUpdate")
	if err != nil {
		return nil, err
	}

	var out BatchUpdateResponse
	if err := c.rest.Post(ctx, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CopyTo copies one sheet into another spreadsheet and returns the
// properties of the copy.
func (c *Client) CopyTo(ctx context.Context, spreadsheetID string, sheetID int64, destinationSpreadsheetID string) (*SheetProperties, error) {
	path, err := spreadsheetPath(spreadsheetID, "/sheets/{sheetId}:copyTo", sheetID)
	if err != nil {
		return nil, err
	}

	body := struct {
		DestinationSpreadsheetID string `json:"destinationSpreadsheetId"`
	}{destinationSpreadsheetID}

	var out SheetProperties
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
