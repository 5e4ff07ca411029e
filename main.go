package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()

	root := &cli.Command{
		Name:  "coursecal",
		Usage: "turn a university course-schedule export into calendar events",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the YAML config file (default ~/.config/coursecal/config.yaml)",
			},
		},
		Commands: []*cli.Command{
			exportCommand(),
			addCommand(),
			removeCommand(),
			calendarsCommand(),
		},
	}

	if err := root.Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
