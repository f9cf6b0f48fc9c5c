package sheets

import (
	"context"
	"errors"

	"github.com/s0up4200/clientele/rest"
)

// GetValuesOptions controls how values are read.
type GetValuesOptions struct {
	MajorDimension       Dimension
	ValueRenderOption    ValueRenderOption
	DateTimeRenderOption DateTimeRenderOption
}

func (o *GetValuesOptions) query() *rest.Query {
	q := rest.NewQuery()
	if o == nil {
		return q
	}
	return q.String("majorDimension", string(o.MajorDimension)).
		String("valueRenderOption", string(o.ValueRenderOption)).
		String("dateTimeRenderOption", string(o.DateTimeRenderOption))
}

// WriteOptions controls how values are written. An empty ValueInputOption
// means RAW.
type WriteOptions struct {
	ValueInputOption             ValueInputOption
	IncludeValuesInResponse      bool
	ResponseValueRenderOption    ValueRenderOption
	ResponseDateTimeRenderOption DateTimeRenderOption
}

func (o *WriteOptions) query() *rest.Query {
	q := rest.NewQuery()
	input := ValueInputRaw
	if o != nil {
		if o.ValueInputOption != "" {
			input = o.ValueInputOption
		}
		q.Bool("includeValuesInResponse", o.IncludeValuesInResponse).
			String("responseValueRenderOption", string(o.ResponseValueRenderOption)).
			String("responseDateTimeRenderOption", string(o.ResponseDateTimeRenderOption))
	}
	return q.Set("valueInputOption", string(input))
}

// AppendOptions controls how values are appended.
type AppendOptions struct {
	WriteOptions
	InsertDataOption InsertDataOption
}

func valuesPath(spreadsheetID, a1Range, verb string) (string, error) {
	return spreadsheetPath(spreadsheetID, "/values/{range}"+verb, a1Range)
}

// GetValues reads one range.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, a1Range string, opts *GetValuesOptions) (*ValueRange, error) {
	path, err := valuesPath(spreadsheetID, a1Range, "")
	if err != nil {
		return nil, err
	}

	var out ValueRange
	if err := c.rest.Get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateValues writes values.Values to values.Range.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID string, values *ValueRange, opts *WriteOptions) (*UpdateValuesResponse, error) {
	if values == nil || values.Range == "" {
		return nil, errors.New("value range with a Range is required")
	}

	path, err := valuesPath(spreadsheetID, values.Range, "")
	if err != nil {
		return nil, err
	}

	var out UpdateValuesResponse
	if err := c.rest.Put(ctx, path, opts.query(), values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AppendValues appends rows after the table found in values.Range.
func (c *Client) AppendValues(ctx context.Context, spreadsheetID string, values *ValueRange, opts *AppendOptions) (*AppendValuesResponse, error) {
	if values == nil || values.Range == "" {
		return nil, errors.New("value range with a Range is required")
	}

	path, err := valuesPath(spreadsheetID, values.Range, ":append")
	if err != nil {
		return nil, err
	}

	var (
		write  *WriteOptions
		insert InsertDataOption
	)
	if opts != nil {
		write = &opts.WriteOptions
		insert = opts.InsertDataOption
	}
	q := write.query().String("insertDataOption", string(insert))

	var out AppendValuesResponse
	if err := c.rest.Post(ctx, path, q, values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearValues clears the values of a range, keeping formatting.
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, a1Range string) (*ClearValuesResponse, error) {
	path, err := valuesPath(spreadsheetID, a1Range, ":clear")
	if err != nil {
		return nil, err
	}

	var out ClearValuesResponse
	if err := c.rest.Post(ctx, path, nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchGetValues reads several ranges in one request.
func (c *Client) BatchGetValues(ctx context.Context, spreadsheetID string, ranges []string, opts *GetValuesOptions) (*BatchGetValuesResponse, error) {
	path, err := spreadsheetPath(spreadsheetID, "/values:batchGet")
	if err != nil {
		return nil, err
	}

	var out BatchGetValuesResponse
	if err := c.rest.Get(ctx, path, opts.query().Strings("ranges", ranges), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchUpdateValues writes several ranges in one request. An empty
// ValueInputOption means RAW.
func (c *Client) BatchUpdateValues(ctx context.Context, spreadsheetID string, req *BatchUpdateValuesRequest) (*BatchUpdateValuesResponse, error) {
	if req == nil {
		return nil, errors.New("batch update values request is required")
	}

	path, err := spreadsheetPath(spreadsheetID, "/values:batchUpdate")
	if err != nil {
		return nil, err
	}

	body := *req
	if body.ValueInputOption == "" {
		body.ValueInputOption = ValueInputRaw
	}

	var out BatchUpdateValuesResponse
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchClearValues clears several ranges in one request.
func (c *Client) BatchClearValues(ctx context.Context, spreadsheetID string, ranges []string) (*BatchClearValuesResponse, error) {
	path, err := spreadsheetPath(spreadsheetID, "/values:batchClear")
	if err != nil {
		return nil, err
	}

	body := struct {
		Ranges []string `json:"ranges"`
	}{ranges}

	var out BatchClearValuesResponse
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchGetValuesByDataFilter reads the ranges matched by filters.
func (c *Client) BatchGetValuesByDataFilter(ctx context.Context, spreadsheetID string, req *BatchGetValuesByDataFilterRequest) (*BatchGetValuesByDataFilterResponse, error) {
	if req == nil {
		return nil, errors.New("batch get by data filter request is required")
	}

	path, err := spreadsheetPath(spreadsheetID, "/values:batchGetByDataFilter")
	if err != nil {
		return nil, err
	}

	var out BatchGetValuesByDataFilterResponse
	if err := c.rest.Post(ctx, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchUpdateValuesByDataFilter writes to the ranges matched by filters.
// An empty ValueInputOption means RAW.
func (c *Client) BatchUpdateValuesByDataFilter(ctx context.Context, spreadsheetID string, req *BatchUpdateValuesByDataFilterRequest) (*BatchUpdateValuesByDataFilterResponse, error) {
	if req == nil {
		return nil, errors.New("batch update by data filter request is required")
	}

	path, err := spreadsheetPath(spreadsheetID, "/values:batchUpdateByDataFilter")
	if err != nil {
		return nil, err
	}

	body := *req
	if body.ValueInputOption == "" {
		body.ValueInputOption = ValueInputRaw
	}

	var out BatchUpdateValuesByDataFilterResponse
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchClearValuesByDataFilter clears the ranges matched by filters.
func (c *Client) BatchClearValuesByDataFilter(ctx context.Context, spreadsheetID string, filters []DataFilter) (*BatchClearValuesResponse, error) {
	path, err := spreadsheetPath(spreadsheetID, "/values:batchClearByDataFilter")
	if err != nil {
		return nil, err
	}

	body := struct {
		DataFilters []DataFilter `json:"dataFilters"`
	}{filters}

	var out BatchClearValuesResponse
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
