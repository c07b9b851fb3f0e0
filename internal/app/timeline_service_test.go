package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/buildsight/timeline-service/internal/domain"
	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/stage"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
	"github.com/buildsight/timeline-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func timePtr(t time.Time) *time.Time { return &t }

func decisionOn(id string, day time.Time) item.Item {
	return item.Item{
		ID:         id,
		ProjectID:  "p-1",
		Title:      "Item " + id,
		Kind:       item.KindDecision,
		OccurredAt: timePtr(day),
		CreatedAt:  day,
	}
}

func designStages() []stage.Stage {
	return []stage.Stage{
		{
			ID:    "s1",
			Name:  "Design",
			From:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
			Order: 1,
		},
		{
			ID:    "s2",
			Name:  "Construction",
			From:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
			Order: 2,
		},
	}
}

// --- NewTimelineService ---

func TestNewTimelineService_NilLogger(t *testing.T) {
	t.Parallel()
	mockClient := mocks.NewMockRecordsClient(t)

	svc := NewTimelineService(mockClient, nil, 0)
	if svc.logger == nil {
		t.Fatal("NewTimelineService(nil logger) should create a no-op logger, got nil")
	}
	if svc.workers != defaultPortfolioWorkers {
		t.Errorf("workers = %d, want default %d", svc.workers, defaultPortfolioWorkers)
	}
}

// --- LogView ---

func TestTimelineService_LogView(t *testing.T) {
	t.Parallel()

	t.Run("groups items by date", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		items := []item.Item{
			decisionOn("a", time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)),
			decisionOn("b", time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)),
		}
		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{}).Return(items, nil)

		groups, err := svc.LogView(context.Background(), "p-1", timeline.ModeDate, item.Filter{})
		if err != nil {
			t.Fatalf("LogView() error = %v, want nil", err)
		}
		if len(groups) != 2 {
			t.Fatalf("len(groups) = %d, want 2", len(groups))
		}
		if groups[0].Key != "2026-02-08" {
			t.Errorf("groups[0].Key = %q, want most recent day first", groups[0].Key)
		}
	})

	t.Run("forwards the filter downstream", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		filter := item.Filter{Kind: item.KindDecision, Discipline: "structural"}
		mockClient.EXPECT().ListItems(mock.Anything, "p-1", filter).Return(nil, nil)

		if _, err := svc.LogView(context.Background(), "p-1", timeline.ModeDiscipline, filter); err != nil {
			t.Fatalf("LogView() error = %v, want nil", err)
		}
	})

	t.Run("rejects invalid group mode", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		_, err := svc.LogView(context.Background(), "p-1", "priority", item.Filter{})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("LogView() error = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects empty project id", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		_, err := svc.LogView(context.Background(), "", timeline.ModeDate, item.Filter{})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("LogView() error = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects invalid kind filter", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		_, err := svc.LogView(context.Background(), "p-1", timeline.ModeDate, item.Filter{Kind: "note"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("LogView() error = %v, want ErrValidation", err)
		}
	})

	t.Run("propagates client errors", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{}).Return(nil, domain.ErrNotFound)

		_, err := svc.LogView(context.Background(), "p-1", timeline.ModeDate, item.Filter{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("LogView() error = %v, want ErrNotFound", err)
		}
	})
}

// --- MilestoneView ---

func TestTimelineService_MilestoneView(t *testing.T) {
	t.Parallel()

	t.Run("composes buckets, current stage, and today marker", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		milestones := []item.Item{
			decisionOn("m1", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)),
		}
		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{MilestoneOnly: true}).Return(milestones, nil)
		mockClient.EXPECT().ListStages(mock.Anything, "p-1").Return(designStages(), nil)

		view, err := svc.MilestoneView(context.Background(), "p-1", "2026-03-15")
		if err != nil {
			t.Fatalf("MilestoneView() error = %v, want nil", err)
		}
		if len(view.Buckets["s2"]) != 1 {
			t.Errorf("Buckets = %v, want m1 in s2", view.Buckets)
		}
		if view.Current == nil || view.Current.ID != "s2" {
			t.Errorf("Current = %+v, want s2", view.Current)
		}
		if view.TodayPercent == nil {
			t.Error("TodayPercent = nil, want value")
		}
	})

	t.Run("empty today uses the injected clock", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)
		svc.now = func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }

		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{MilestoneOnly: true}).Return(nil, nil)
		mockClient.EXPECT().ListStages(mock.Anything, "p-1").Return(designStages(), nil)

		view, err := svc.MilestoneView(context.Background(), "p-1", "")
		if err != nil {
			t.Fatalf("MilestoneView() error = %v, want nil", err)
		}
		if view.Current == nil || view.Current.ID != "s1" {
			t.Errorf("Current = %+v, want s1 per injected clock", view.Current)
		}
	})

	t.Run("rejects malformed today", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		_, err := svc.MilestoneView(context.Background(), "p-1", "15/03/2026")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("MilestoneView() error = %v, want ErrValidation", err)
		}
	})

	t.Run("propagates stage listing errors", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{MilestoneOnly: true}).Return(nil, nil)
		mockClient.EXPECT().ListStages(mock.Anything, "p-1").Return(nil, domain.ErrUnavailable)

		_, err := svc.MilestoneView(context.Background(), "p-1", "2026-03-15")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("MilestoneView() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- PortfolioLogViews ---

func TestTimelineService_PortfolioLogViews(t *testing.T) {
	t.Parallel()

	t.Run("aggregates all projects", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		mockClient.EXPECT().ListProjects(mock.Anything).Return([]string{"p-1", "p-2"}, nil)
		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{}).
			Return([]item.Item{decisionOn("a", time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC))}, nil)
		mockClient.EXPECT().ListItems(mock.Anything, "p-2", item.Filter{}).Return(nil, nil)

		result, err := svc.PortfolioLogViews(context.Background())
		if err != nil {
			t.Fatalf("PortfolioLogViews() error = %v, want nil", err)
		}
		if len(result.Logs) != 2 {
			t.Errorf("len(Logs) = %d, want 2", len(result.Logs))
		}
		if len(result.Errors) != 0 {
			t.Errorf("Errors = %v, want none", result.Errors)
		}
	})

	t.Run("partial failure is not a hard error", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		mockClient.EXPECT().ListProjects(mock.Anything).Return([]string{"p-1", "p-2"}, nil)
		mockClient.EXPECT().ListItems(mock.Anything, "p-1", item.Filter{}).Return(nil, nil)
		mockClient.EXPECT().ListItems(mock.Anything, "p-2", item.Filter{}).Return(nil, domain.ErrUnavailable)

		result, err := svc.PortfolioLogViews(context.Background())
		if err != nil {
			t.Fatalf("PortfolioLogViews() error = %v, want nil", err)
		}
		if len(result.Logs) != 1 || len(result.Errors) != 1 {
			t.Fatalf("Logs = %d, Errors = %d, want 1 and 1", len(result.Logs), len(result.Errors))
		}
		if result.Errors[0].ProjectID != "p-2" {
			t.Errorf("Errors[0].ProjectID = %q, want p-2", result.Errors[0].ProjectID)
		}
		if !errors.Is(result.Errors[0].Err, domain.ErrUnavailable) {
			t.Errorf("Errors[0].Err = %v, want ErrUnavailable", result.Errors[0].Err)
		}
	})

	t.Run("listing projects failure is a hard error", func(t *testing.T) {
		t.Parallel()
		mockClient := mocks.NewMockRecordsClient(t)
		svc := NewTimelineService(mockClient, discardLogger(), 2)

		mockClient.EXPECT().ListProjects(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.PortfolioLogViews(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("PortfolioLogViews() error = %v, want ErrUnavailable", err)
		}
	})
}
