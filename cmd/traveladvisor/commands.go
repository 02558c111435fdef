package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/oneshot"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/app"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 30 * time.Second

// loadEnv loads the env file when it exists. Variables already set win.
func loadEnv(cmd *cli.Command) error {
	path := cmd.String("env")
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	if err := loadEnv(cmd); err != nil {
		return err
	}
	a := app.NewTravelAdvisorApp()
	return <-a.RunAsync(ctx)
}

func indexAction(ctx context.Context, cmd *cli.Command) error {
	if err := loadEnv(cmd); err != nil {
		return err
	}
	done := make(chan oneshot.Result, 1)
	res, err := runOnce(ctx, app.NewIndexApp(done), done)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed %d chunks from %d sections\n", res.IndexStats.Chunks, res.IndexStats.Sections)
	return nil
}

func askAction(ctx context.Context, cmd *cli.Command) error {
	if err := loadEnv(cmd); err != nil {
		return err
	}
	question := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if question == "" {
		return errors.New("a question is required")
	}

	var progress io.Writer = os.Stderr
	if cmd.Bool("quiet") {
		progress = nil
	}

	done := make(chan oneshot.Result, 1)
	answerer := &oneshot.QuestionAnswerer{
		Question: question,
		Progress: progress,
		Done:     done,
	}
	res, err := runOnce(ctx, app.NewAskApp(answerer), done)
	if err != nil {
		return err
	}
	fmt.Println(res.Answer)
	return nil
}

func mcpAction(ctx context.Context, cmd *cli.Command) error {
	if err := loadEnv(cmd); err != nil {
		return err
	}
	// stdout carries the protocol
	if err := os.Setenv("LOG_OUTPUT", "stderr"); err != nil {
		return err
	}
	return <-app.NewMCPApp().RunAsync(ctx)
}

// runOnce runs a one-shot app until its runnable reports a result, then shuts it down.
func runOnce(ctx context.Context, a *symbiont.App, done <-chan oneshot.Result) (oneshot.Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownCh := a.RunAsync(runCtx)

	select {
	case res := <-done:
		cancel()
		select {
		case err := <-shutdownCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				return res, err
			}
		case <-time.After(shutdownTimeout):
			return res, errors.New("application did not shut down in time")
		}
		return res, res.Err
	case err := <-shutdownCh:
		if err == nil {
			err = errors.New("application stopped before completing")
		}
		return oneshot.Result{}, err
	}
}
