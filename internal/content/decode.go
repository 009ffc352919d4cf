package content

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// StripFences removes a wrapping markdown code fence (``` or ```json) that
// models sometimes emit around structured output despite schema enforcement.
func StripFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		header := strings.TrimSpace(t[:nl])
		if header == "" || strings.EqualFold(header, "json") {
			t = t[nl+1:]
		}
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// Decode parses a raw model reply into out, tolerating code fences and
// rejecting trailing garbage after the JSON value.
func Decode(raw string, out any) error {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return fmt.Errorf("empty model reply")
	}
	dec := json.NewDecoder(strings.NewReader(cleaned))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse model JSON: %w", err)
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return fmt.Errorf("trailing data after model JSON")
	}
	return nil
}

// DecodeMap re-marshals a generic structured-output object into a typed
// document.
func DecodeMap(obj map[string]any, out any) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("re-marshal model object: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode model object: %w", err)
	}
	return nil
}
