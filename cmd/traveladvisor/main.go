package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "traveladvisor",
		Usage: "Travel advice grounded in Mark Twain's 'The Innocents Abroad'",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP chat API, the MCP endpoint and the book watcher",
				Flags:  []cli.Flag{envFlag()},
				Action: serveAction,
			},
			{
				Name:   "index",
				Usage:  "Rebuild the book index and exit",
				Flags:  []cli.Flag{envFlag()},
				Action: indexAction,
			},
			{
				Name:      "ask",
				Usage:     "Answer a single question and exit",
				ArgsUsage: "<question>",
				Flags: []cli.Flag{
					envFlag(),
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Do not print tool progress",
					},
				},
				Action: askAction,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the travel tools to an MCP client over stdio",
				Flags:  []cli.Flag{envFlag()},
				Action: mcpAction,
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func envFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "env",
		Usage: "Path of an optional environment file",
		Value: ".env",
	}
}
