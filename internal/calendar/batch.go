package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/drewfead/coursecal/internal/schedule"
)

// CreateResult reports one batch-create call. Partial success is the
// normal case: callers should render "N succeeded, M failed" from the
// count and the error list rather than treating the call as pass/fail.
type CreateResult struct {
	EventsCreated int
	EventIDs      []string
	BatchID       string
	Errors        []string
}

// DeleteResult reports one batch-delete call. DeletedCount below
// TotalFound signals partial failure even though the call succeeded.
type DeleteResult struct {
	DeletedCount int
	TotalFound   int
	Errors       []string
}

// NewBatchID generates a batch identifier from the current UTC time
// and a random suffix. Collisions are negligible at this scale.
func NewBatchID(now time.Time) string {
	return fmt.Sprintf("batch-%s-%s", now.UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
}

// CreateCourseEvents creates one recurring event per course on the
// given calendar, all tagged with the batch id. Courses are processed
// sequentially, one network call at a time, so the error list stays in
// input order and per-user rate limits aren't burst. A failure for one
// course (missing date, empty day set, or a provider error) is
// recorded as "<title>: <message>" and never aborts the rest.
func (c *Client) CreateCourseEvents(ctx context.Context, courses []schedule.Course, calendarID, batchID, timeZone string) (*CreateResult, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	if batchID == "" {
		batchID = NewBatchID(time.Now())
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	result := &CreateResult{BatchID: batchID}
	for _, course := range courses {
		event, err := CourseToEvent(course, batchID, timeZone, today)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", course.Title, err))
			continue
		}

		created, err := c.InsertEvent(ctx, calendarID, event)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", course.Title, err))
			continue
		}

		result.EventsCreated++
		result.EventIDs = append(result.EventIDs, created.Id)
		slog.Debug("created course event", "title", course.Title, "event_id", created.Id, "batch", batchID)
	}

	slog.Info("batch create finished",
		"batch", batchID,
		"created", result.EventsCreated,
		"failed", len(result.Errors),
	)
	return result, nil
}

// DeleteBatch removes every event tagged with the batch id from the
// calendar. Each deletion is independent: a per-event failure is
// recorded and the remaining deletions continue. A batch id matching
// nothing is a success with zero counts.
func (c *Client) DeleteBatch(ctx context.Context, calendarID, batchID string) (*DeleteResult, error) {
	if calendarID == "" {
		calendarID = "primary"
	}

	events, err := c.ListBatch(ctx, calendarID, batchID)
	if err != nil {
		return nil, fmt.Errorf("unable to find batch %s: %w", batchID, err)
	}

	result := &DeleteResult{TotalFound: len(events)}
	for _, event := range events {
		if err := c.DeleteEvent(ctx, calendarID, event.Id); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", event.Id, err))
			continue
		}
		result.DeletedCount++
	}

	slog.Info("batch delete finished",
		"batch", batchID,
		"found", result.TotalFound,
		"deleted", result.DeletedCount,
		"failed", len(result.Errors),
	)
	return result, nil
}
