package oneshot

import (
	"context"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
)

// Result is the outcome of a one-shot command.
type Result struct {
	Answer     string
	Outcome    string
	IndexStats usecases.BookIndexStats
	Err        error
}

// report hands the result to the caller and blocks until the app stops, so the
// caller decides when to shut down.
func report(ctx context.Context, done chan<- Result, res Result) error {
	if done != nil {
		select {
		case done <- res:
		case <-ctx.Done():
			return nil
		}
	}
	<-ctx.Done()
	return nil
}
