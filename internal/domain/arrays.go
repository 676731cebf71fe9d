package domain

import "encoding/json"

// ParseArrayField repairs list fields written by an older client that stored the
// whole list as a single JSON-encoded string element. A one-element slice whose
// element decodes to a JSON array yields that array; other slices are returned
// unchanged; anything that is not a slice yields an empty list.
func ParseArrayField(data any) []string {
	var items []string
	switch v := data.(type) {
	case []string:
		items = v
	case []any:
		items = make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	default:
		return []string{}
	}

	if len(items) == 1 {
		var parsed []any
		if err := json.Unmarshal([]byte(items[0]), &parsed); err == nil && parsed != nil {
			out := make([]string, 0, len(parsed))
			for _, item := range parsed {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return items
}

// DecodeStringList decodes a stored JSON list column, applying ParseArrayField.
// Undecodable values yield an empty list.
func DecodeStringList(raw string) []string {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return ParseArrayField(items)
}

// EncodeStringList encodes a list for storage.
func EncodeStringList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
