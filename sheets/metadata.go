package sheets

import "context"

// GetDeveloperMetadata gets one developer metadata entry by ID.
func (c *Client) GetDeveloperMetadata(ctx context.Context, spreadsheetID string, metadataID int64) (*DeveloperMetadata, error) {
	path, err := spreadsheetPath(spreadsheetID, "/developerMetadata/{metadataId}", metadataID)
	if err != nil {
		return nil, err
	}

	var out DeveloperMetadata
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchDeveloperMetadata returns the metadata matched by any of filters.
func (c *Client) SearchDeveloperMetadata(ctx context.Context, spreadsheetID string, filters []DataFilter) ([]MatchedDeveloperMetadata, error) {
	path, err := spreadsheetPath(spreadsheetID, "/developerMetadata:search")
	if err != nil {
		return nil, err
	}

	body := struct {
		DataFilters []DataFilter `json:"dataFilters"`
	}{filters}

	var out struct {
		MatchedDeveloperMetadata []MatchedDeveloperMetadata `json:"matchedDeveloperMetadata"`
	}
	if err := c.rest.Post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return out.MatchedDeveloperMetadata, nil
}
