package oneshot

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
)

// IndexBuilder is a runnable that rebuilds the book index once and reports
// the result on Done.
type IndexBuilder struct {
	BuildBookIndex usecases.BuildBookIndex `resolve:""`
	Logger         *log.Logger             `resolve:""`
	Done           chan<- Result
}

// Run builds the index and then waits for the app to shut down.
func (b IndexBuilder) Run(ctx context.Context) error {
	stats, err := b.BuildBookIndex.Execute(ctx)
	if err == nil {
		b.Logger.Printf("IndexBuilder: indexed %d chunks from %d sections", stats.Chunks, stats.Sections)
	}
	return report(ctx, b.Done, Result{IndexStats: stats, Err: err})
}
