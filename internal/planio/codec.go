package planio

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Encode renders an export as indented JSON, the on-disk file format.
func Encode(e Export) ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing plan: %w", err)
	}
	return data, nil
}

// Decode parses an export document. Shape errors (malformed JSON, bad
// dates) surface here; referential integrity is checked separately by
// Validate.
func Decode(data []byte) (Export, error) {
	var e Export
	if err := json.Unmarshal(data, &e); err != nil {
		return Export{}, fmt.Errorf("parsing plan: %w", err)
	}
	return e, nil
}

// EncodeShare renders an export as a base64 share string for clipboard
// paste and URL query parameters.
func EncodeShare(e Export) (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("serializing plan: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeShare parses a base64 share string back into an export.
func DecodeShare(s string) (Export, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Export{}, fmt.Errorf("decoding share string: %w", err)
	}
	return Decode(data)
}

// Filename derives the suggested export filename, e.g.
// "plan-backend-team-q1-2025.json".
func Filename(e Export) string {
	team := strings.ReplaceAll(strings.ToLower(e.TeamName), " ", "-")
	quarter := strings.ReplaceAll(strings.ToLower(e.QuarterName), " ", "-")
	return fmt.Sprintf("plan-%s-%s.json", team, quarter)
}
