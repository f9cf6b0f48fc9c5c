package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToRecords converts API results into records by their JSON form, so
// expressions see the same field names the APIs use. A slice becomes one
// record per element; a single object becomes one record.
func ToRecords(v any) ([]Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return []Record{}, nil
	}

	if len(raw) > 0 && raw[0] == '[' {
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding records: %w", err)
		}
		return records, nil
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return []Record{record}, nil
}
