package mcpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var weatherDefinition = domain.ToolDefinition{
	Name:        "get_weather",
	Description: "Get the current weather for a city.",
	Input: domain.ToolInput{
		Type: "object",
		Fields: map[string]domain.ToolField{
			"location": {Type: "string", Description: "City", Required: true},
			"units":    {Type: "string", Description: "Units", Enum: []string{"metric", "imperial", "standard"}},
		},
	},
}

func connect(t *testing.T, registry domain.ToolRegistry) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(registry, log.New(io.Discard, "", 0))
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestServer_ListTools(t *testing.T) {
	registry := domain.NewMockToolRegistry(t)
	registry.EXPECT().List().Return([]domain.ToolDefinition{weatherDefinition}).Once()

	session := connect(t, registry)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, "get_weather", res.Tools[0].Name)
	assert.Contains(t, res.Tools[0].Description, "Get the current weather for a city.")
}

func TestServer_CallTool(t *testing.T) {
	tests := map[string]struct {
		result domain.ToolResult
	}{
		"success": {
			result: domain.ToolResult{Content: "Current weather in Paris, FR:\nTemperature: 12°C (feels like 10°C)"},
		},
		"tool-error": {
			result: domain.ToolResult{Content: `{"error":"invalid_arguments","details":"location is required"}`, IsError: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			registry := domain.NewMockToolRegistry(t)
			registry.EXPECT().List().Return([]domain.ToolDefinition{weatherDefinition}).Once()
			registry.EXPECT().
				Invoke(mock.Anything, mock.MatchedBy(func(call domain.ToolCall) bool {
					return call.Name == "get_weather" && call.Arguments == `{"location":"Paris"}` && call.ID != ""
				})).
				Return(tt.result).
				Once()

			session := connect(t, registry)

			res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "get_weather",
				Arguments: map[string]any{"location": "Paris"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.result.IsError, res.IsError)
			require.Len(t, res.Content, 1)
			text, ok := res.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Equal(t, tt.result.Content, text.Text)
		})
	}
}

func TestInputSchema(t *testing.T) {
	schema := inputSchema(weatherDefinition.Input)

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"location"}, schema["required"])

	properties := schema["properties"].(map[string]any)
	units := properties["units"].(map[string]any)
	assert.Equal(t, []string{"metric", "imperial", "standard"}, units["enum"])

	empty := inputSchema(domain.ToolInput{})
	assert.Equal(t, "object", empty["type"])
	_, hasRequired := empty["required"]
	assert.False(t, hasRequired)
}
