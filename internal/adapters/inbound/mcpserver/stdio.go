package mcpserver

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StdioServer serves the tool registry to an MCP client over stdin/stdout.
type StdioServer struct {
	Registry domain.ToolRegistry `resolve:""`
	Logger   *log.Logger         `resolve:""`
}

// Run blocks until the client disconnects or ctx is cancelled.
func (s StdioServer) Run(ctx context.Context) error {
	s.Logger.Println("MCPServer: serving tools over stdio")
	err := NewServer(s.Registry, s.Logger).Run(ctx, &mcp.StdioTransport{})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
