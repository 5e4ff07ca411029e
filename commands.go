package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/drewfead/coursecal/internal/auth"
	"github.com/drewfead/coursecal/internal/calendar"
	"github.com/drewfead/coursecal/internal/config"
	"github.com/drewfead/coursecal/internal/grid"
	"github.com/drewfead/coursecal/internal/ical"
	"github.com/drewfead/coursecal/internal/schedule"
)

// mutationTimeout is the hard cap on one batch create or delete call.
// An abandoned batch stays recoverable: every created event carries
// its batch id, so cleanup via `remove` still works.
const mutationTimeout = 5 * time.Minute

const icsFilePermMode = 0o644

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "convert a schedule export into a downloadable .ics file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "schedule spreadsheet (.xlsx or .csv)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "path for the generated calendar file",
				Value:   "schedule.ics",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			courses, err := readCourses(cmd.String("input"))
			if err != nil {
				return err
			}

			doc := ical.Calendar(courses, time.Now())
			output := cmd.String("output")
			if err := os.WriteFile(output, []byte(doc), icsFilePermMode); err != nil {
				return fmt.Errorf("unable to write calendar file: %w", err)
			}

			slog.Info("calendar file written", "path", output, "courses", len(courses))
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "create one recurring Google Calendar event per course",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "schedule spreadsheet (.xlsx or .csv)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "calendar",
				Aliases: []string{"c"},
				Usage:   "target calendar id (defaults to the configured calendar)",
			},
			&cli.StringFlag{
				Name:  "batch",
				Usage: "batch id to tag created events with (generated when omitted)",
			},
			&cli.StringFlag{
				Name:  "timezone",
				Usage: "IANA zone the schedule's wall-clock times are in",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse before authenticating; a bad file shouldn't
			// trigger the OAuth flow.
			courses, err := readCourses(cmd.String("input"))
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			client, err := newCalendarClient(ctx, cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, mutationTimeout)
			defer cancel()

			calendarID := cmd.String("calendar")
			if calendarID == "" {
				calendarID = cfg.CalendarID
			}
			timeZone := cmd.String("timezone")
			if timeZone == "" {
				timeZone = cfg.Timezone
			}

			result, err := client.CreateCourseEvents(ctx, courses, calendarID, cmd.String("batch"), timeZone)
			if err != nil {
				return err
			}

			fmt.Printf("%d succeeded, %d failed\n", result.EventsCreated, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("  %s\n", e)
			}
			fmt.Printf("batch id: %s (use 'coursecal remove --batch %s' to undo)\n", result.BatchID, result.BatchID)
			return nil
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "delete every event created by one 'add' run",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "batch",
				Usage:    "batch id printed by 'add'",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "calendar",
				Aliases: []string{"c"},
				Usage:   "calendar id the batch was created on",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			client, err := newCalendarClient(ctx, cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, mutationTimeout)
			defer cancel()

			calendarID := cmd.String("calendar")
			if calendarID == "" {
				calendarID = cfg.CalendarID
			}

			result, err := client.DeleteBatch(ctx, calendarID, cmd.String("batch"))
			if err != nil {
				return err
			}

			fmt.Printf("%d of %d deleted, %d failed\n", result.DeletedCount, result.TotalFound, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("  %s\n", e)
			}
			return nil
		},
	}
}

func calendarsCommand() *cli.Command {
	return &cli.Command{
		Name:  "calendars",
		Usage: "list calendars the authenticated user can write to",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			client, err := newCalendarClient(ctx, cfg)
			if err != nil {
				return err
			}

			calendars, err := client.ListCalendars(ctx)
			if err != nil {
				return err
			}

			for _, c := range calendars {
				fmt.Printf("%s\t%s\n", c.ID, c.Summary)
			}
			return nil
		},
	}
}

// readCourses reads the spreadsheet at path and extracts its course
// records.
func readCourses(path string) ([]schedule.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read schedule file: %w", err)
	}

	g, err := grid.Read(data)
	if err != nil {
		return nil, err
	}

	courses := schedule.Extract(g)
	if len(courses) == 0 {
		return nil, fmt.Errorf("no enrolled courses found in %s", path)
	}
	return courses, nil
}

// newCalendarClient builds an authenticated Calendar API client from
// the configured credentials, honoring the endpoint override used for
// testing against a mock server.
func newCalendarClient(ctx context.Context, cfg *config.Config) (*calendar.Client, error) {
	if err := config.EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	httpClient, err := auth.ClientFromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %w", err)
	}

	if cfg.APIEndpoint != "" {
		return calendar.NewClient(ctx, httpClient, cfg.APIEndpoint)
	}
	return calendar.NewClient(ctx, httpClient)
}
