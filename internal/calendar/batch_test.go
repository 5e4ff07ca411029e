package calendar_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/drewfead/coursecal/internal/calendar"
	"github.com/drewfead/coursecal/internal/schedule"
	"github.com/drewfead/coursecal/pkg/googlecaltest"
)

func newTestClient(t *testing.T) (*calendar.Client, *googlecaltest.Server) {
	t.Helper()

	server := googlecaltest.NewServer()
	t.Cleanup(server.Close)

	client, err := calendar.NewClient(context.Background(), &http.Client{}, server.URL)
	if err != nil {
		t.Fatalf("failed to create calendar client: %v", err)
	}
	return client, server
}

func batchCourses() []schedule.Course {
	jan13 := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC)
	may2 := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)

	return []schedule.Course{
		{
			ID:        1,
			Title:     "CS 2110 - Computer Organization",
			Days:      []schedule.Weekday{schedule.Monday, schedule.Wednesday},
			Start:     schedule.Clock{Hour: 9},
			End:       schedule.Clock{Hour: 10, Minute: 15},
			StartDate: jan13,
			EndDate:   may2,
		},
		{
			ID:    2,
			Title: "HIST 2111 - United States to 1877",
			Days:  []schedule.Weekday{schedule.Friday},
			Start: schedule.Clock{Hour: 11},
			End:   schedule.Clock{Hour: 11, Minute: 50},
			// No start date: this course cannot be scheduled.
		},
		{
			ID:        3,
			Title:     "MATH 1550 - Calculus I",
			Days:      []schedule.Weekday{schedule.Tuesday, schedule.Thursday},
			Start:     schedule.Clock{Hour: 13, Minute: 30},
			End:       schedule.Clock{Hour: 14, Minute: 45},
			StartDate: jan13,
			EndDate:   may2,
		},
	}
}

func TestCreateCourseEvents_PartialSuccess(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	result, err := client.CreateCourseEvents(ctx, batchCourses(), "primary", "", "")
	if err != nil {
		t.Fatalf("CreateCourseEvents() error = %v", err)
	}

	if result.EventsCreated != 2 {
		t.Errorf("expected 2 events created, got %d", result.EventsCreated)
	}
	if len(result.EventIDs) != 2 {
		t.Errorf("expected 2 event ids, got %d", len(result.EventIDs))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "HIST 2111") {
		t.Errorf("error must reference the failing course's title, got %q", result.Errors[0])
	}
	if result.BatchID == "" {
		t.Error("expected a generated batch id")
	}

	// Every created event carries the batch id as private metadata.
	for _, event := range server.GetEvents("primary") {
		if event.ExtendedProperties == nil || event.ExtendedProperties.Private["coursecalBatch"] != result.BatchID {
			t.Errorf("event %s missing batch tag", event.Id)
		}
	}
}

func TestCreateCourseEvents_CallerSuppliedBatchID(t *testing.T) {
	client, _ := newTestClient(t)

	result, err := client.CreateCourseEvents(context.Background(), batchCourses()[:1], "primary", "batch-fixed", "")
	if err != nil {
		t.Fatalf("CreateCourseEvents() error = %v", err)
	}
	if result.BatchID != "batch-fixed" {
		t.Errorf("expected caller-supplied batch id, got %q", result.BatchID)
	}
}

func TestDeleteBatch(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateCourseEvents(ctx, batchCourses(), "primary", "batch-under-test", "")
	if err != nil {
		t.Fatalf("CreateCourseEvents() error = %v", err)
	}
	if created.EventsCreated != 2 {
		t.Fatalf("expected 2 events created, got %d", created.EventsCreated)
	}

	// A second batch on the same calendar must survive the delete.
	other, err := client.CreateCourseEvents(ctx, batchCourses()[:1], "primary", "batch-other", "")
	if err != nil {
		t.Fatalf("CreateCourseEvents() error = %v", err)
	}
	if other.EventsCreated != 1 {
		t.Fatalf("expected 1 event in other batch, got %d", other.EventsCreated)
	}

	result, err := client.DeleteBatch(ctx, "primary", "batch-under-test")
	if err != nil {
		t.Fatalf("DeleteBatch() error = %v", err)
	}

	if result.TotalFound != 2 || result.DeletedCount != 2 {
		t.Errorf("expected 2 found and 2 deleted, got %d / %d", result.TotalFound, result.DeletedCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}

	remaining := server.GetEvents("primary")
	if len(remaining) != 1 {
		t.Fatalf("expected 1 event left, got %d", len(remaining))
	}
	if remaining[0].ExtendedProperties.Private["coursecalBatch"] != "batch-other" {
		t.Error("wrong batch survived the delete")
	}
}

func TestDeleteBatch_NoMatches(t *testing.T) {
	client, _ := newTestClient(t)

	result, err := client.DeleteBatch(context.Background(), "primary", "batch-nonexistent")
	if err != nil {
		t.Fatalf("DeleteBatch() error = %v", err)
	}

	if result.TotalFound != 0 || result.DeletedCount != 0 || len(result.Errors) != 0 {
		t.Errorf("expected empty result for unknown batch, got %+v", result)
	}
}

func TestNewBatchID_Unique(t *testing.T) {
	now := time.Now()
	a := calendar.NewBatchID(now)
	b := calendar.NewBatchID(now)
	if a == b {
		t.Error("batch ids generated at the same instant must differ")
	}
	if !strings.HasPrefix(a, "batch-") {
		t.Errorf("unexpected batch id format %q", a)
	}
}
