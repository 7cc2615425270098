package database

import "encoding/json"

// encodeStringList stores a list as JSON text; nil and empty become an empty column
func encodeStringList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(raw)
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

func encodeBlob(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	return &s
}

func decodeBlob(s *string) []byte {
	if s == nil || *s == "" {
		return nil
	}
	return []byte(*s)
}
