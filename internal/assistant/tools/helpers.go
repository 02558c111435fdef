package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
)

// toolError is the JSON payload returned to the model for rejected calls.
type toolError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Example string `json:"example,omitempty"`
}

// newToolError encodes a tool error payload.
func newToolError(code, details, example string) string {
	b, err := json.Marshal(toolError{Error: code, Details: details, Example: example})
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, code)
	}
	return string(b)
}

// invalidArguments builds the result returned when the call arguments are rejected.
func invalidArguments(call domain.ToolCall, details, example string) domain.ToolResult {
	return domain.ToolResult{
		CallID:  call.ID,
		Content: newToolError("invalid_arguments", details, example),
		IsError: true,
	}
}

// failure builds an error result carrying a user-facing explanation.
func failure(call domain.ToolCall, content string) domain.ToolResult {
	return domain.ToolResult{CallID: call.ID, Content: content, IsError: true}
}

// unmarshalToolInput unmarshals the tool arguments into the target struct, ensuring
// that only a single JSON object is present and that there are no unknown fields.
func unmarshalToolInput(arguments string, target any) error {
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}
