package homework

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is the decoded body of a homework status request.
type Response struct {
	Homeworks []Record
	// CurrentDate is nil when the server omitted it or sent a non-integer.
	CurrentDate *int64
}

// Latest returns the most recent homework record.
func (r *Response) Latest() (Record, error) {
	if len(r.Homeworks) == 0 {
		return Record{}, ErrNoHomeworks
	}
	return r.Homeworks[0], nil
}

// DecodeResponse parses a raw response body and checks its shape.
func DecodeResponse(body []byte) (*Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedResponse)
	}

	records, err := CheckResponse(fields)
	if err != nil {
		return nil, err
	}

	resp := &Response{Homeworks: records}
	if raw, ok := fields["current_date"]; ok {
		var ts int64
		if err := json.Unmarshal(raw, &ts); err == nil && !isNull(raw) {
			resp.CurrentDate = &ts
		}
	}
	return resp, nil
}

// CheckResponse verifies that "homeworks" is present and is a list, and
// decodes its elements. Element fields are left for FormatStatus to check.
func CheckResponse(fields map[string]json.RawMessage) ([]Record, error) {
	raw, ok := fields["homeworks"]
	if !ok {
		return nil, schemaError("key %q is missing", "homeworks")
	}

	var items []json.RawMessage
	if isNull(raw) {
		return nil, schemaError("key %q is not a list", "homeworks")
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, schemaError("key %q is not a list", "homeworks")
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, schemaError("homeworks[%d] is not an object", i)
		}
		var rec Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, schemaError("homeworks[%d]: %v", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
