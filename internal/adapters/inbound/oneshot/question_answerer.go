package oneshot

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
)

// QuestionAnswerer is a runnable that answers one question without persisting
// a conversation. Tool progress is written to Progress when set.
type QuestionAnswerer struct {
	Orchestrator usecases.Orchestrator `resolve:""`
	Logger       *log.Logger           `resolve:""`
	Question     string
	Progress     io.Writer
	Done         chan<- Result
}

// Run answers the question and then waits for the app to shut down.
func (q QuestionAnswerer) Run(ctx context.Context) error {
	res, err := q.Orchestrator.Run(ctx, nil, q.Question, q.onEvent)
	return report(ctx, q.Done, Result{Answer: res.Answer, Outcome: res.Outcome, Err: err})
}

func (q QuestionAnswerer) onEvent(eventType domain.AssistantEventType, data any) error {
	if q.Progress == nil {
		return nil
	}
	if started, ok := data.(domain.AssistantToolCallStarted); ok {
		_, err := fmt.Fprintf(q.Progress, "%s %s\n", started.StatusMessage, started.Arguments)
		return err
	}
	return nil
}
