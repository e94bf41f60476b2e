package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ToolInput represents the hook payload sent by the agent host before a tool runs.
type ToolInput struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	parsed    map[string]interface{}
}

// ParseToolInput reads and parses tool input JSON from a reader.
func ParseToolInput(reader io.Reader) (*ToolInput, error) {
	decoder := json.NewDecoder(reader)

	var input *ToolInput
	if err := decoder.Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if input == nil {
		return nil, fmt.Errorf("payload must be a JSON object, got null")
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON payload")
	}

	if bytes.Equal(input.ToolInput, []byte("null")) {
		return nil, fmt.Errorf("tool_input must be an object, got null")
	}

	if len(input.ToolInput) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(input.ToolInput, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse tool_input: %w", err)
		}
		input.parsed = parsed
	}

	return input, nil
}

// GetStringArg retrieves a string argument from the tool input.
// Returns the value and true if found, empty string and false if not found.
func (t *ToolInput) GetStringArg(name string) (string, bool) {
	if t.parsed == nil {
		return "", false
	}

	value, ok := t.parsed[name]
	if !ok {
		return "", false
	}

	strValue, ok := value.(string)
	if !ok {
		return "", false
	}

	return strValue, true
}

// Command returns the shell command to check.
// A missing command is treated as an empty string; a null or non-string
// command is an error.
func (t *ToolInput) Command() (string, error) {
	if command, ok := t.GetStringArg("command"); ok {
		return command, nil
	}

	if value, ok := t.parsed["command"]; ok {
		if value == nil {
			return "", fmt.Errorf("tool_input.command must be a string, got null")
		}
		return "", fmt.Errorf("tool_input.command must be a string, got %T", value)
	}

	return "", nil
}
