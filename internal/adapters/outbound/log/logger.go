package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	// Output is stdout or stderr. The MCP stdio transport owns stdout, so it logs to stderr.
	Output string `config:"LOG_OUTPUT" default:"stdout"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	w, err := outputWriter(il.Output)
	if err != nil {
		return ctx, err
	}
	depend.Register(log.New(w, "", log.Lmsgprefix))
	return ctx, nil
}

func outputWriter(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("invalid LOG_OUTPUT %q: expected stdout or stderr", output)
	}
}
