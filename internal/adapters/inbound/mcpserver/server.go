package mcpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "twain-travel-advisor"
	serverVersion = "v1.0.0"
)

// NewServer creates an MCP server exposing every tool of the registry.
func NewServer(registry domain.ToolRegistry, logger *log.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	for _, def := range registry.List() {
		server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description + " " + def.ComposeHint(),
			InputSchema: inputSchema(def.Input),
		}, toolHandler(registry, def.Name, logger))
	}
	return server
}

// NewStreamableHandler serves the MCP server over streamable HTTP.
func NewStreamableHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

func toolHandler(registry domain.ToolRegistry, name string, logger *log.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := "{}"
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			arguments = string(req.Params.Arguments)
		}

		result := registry.Invoke(ctx, domain.ToolCall{
			ID:        uuid.NewString(),
			Name:      name,
			Arguments: arguments,
		})
		if result.IsError {
			logger.Printf("MCPServer: tool %s returned an error result", name)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Content}},
			IsError: result.IsError,
		}, nil
	}
}

// inputSchema renders a tool input as a JSON schema object.
func inputSchema(in domain.ToolInput) map[string]any {
	properties := make(map[string]any, len(in.Fields))
	for name, field := range in.Fields {
		prop := map[string]any{
			"type":        field.Type,
			"description": field.Description,
		}
		if len(field.Enum) > 0 {
			prop["enum"] = field.Enum
		}
		properties[name] = prop
	}

	schemaType := in.Type
	if schemaType == "" {
		schemaType = "object"
	}
	schema := map[string]any{
		"type":                 schemaType,
		"properties":           properties,
		"additionalProperties": false,
	}
	if required := in.RequiredFields(); len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
