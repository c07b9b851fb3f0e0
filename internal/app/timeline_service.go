// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/buildsight/timeline-service/internal/app/fanout"
	"github.com/buildsight/timeline-service/internal/domain"
	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
	"github.com/buildsight/timeline-service/internal/ports"
)

// Compile-time check that TimelineService implements ports.TimelineService.
var _ ports.TimelineService = (*TimelineService)(nil)

// defaultPortfolioWorkers bounds portfolio fan-out when no explicit worker
// count is configured.
const defaultPortfolioWorkers = 4

// TimelineService implements ports.TimelineService by fetching decision log
// items and stages from the downstream records API through the RecordsClient
// port and running the pure grouping and stage-projection logic over them.
// It handles validation, structured logging, and multi-step coordination but
// contains no grouping rules itself.
type TimelineService struct {
	records ports.RecordsClient
	logger  *slog.Logger
	now     func() time.Time
	workers int
}

// NewTimelineService creates a TimelineService. The client port provides
// access to the downstream records API. The logger is used for structured
// request/error logging; nil falls back to a no-op logger. workers bounds
// portfolio fan-out concurrency; values below 1 use a default.
func NewTimelineService(client ports.RecordsClient, logger *slog.Logger, workers int) *TimelineService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers < 1 {
		workers = defaultPortfolioWorkers
	}
	return &TimelineService{
		records: client,
		logger:  logger,
		now:     time.Now,
		workers: workers,
	}
}

// LogView returns the project's decision log grouped per the given mode.
func (s *TimelineService) LogView(ctx context.Context, projectID string, mode timeline.GroupMode, filter item.Filter) ([]timeline.Group, error) {
	s.logger.InfoContext(ctx, "computing log view",
		slog.String("project_id", projectID),
		slog.String("group_by", mode.String()),
	)

	if err := validateLogRequest(projectID, mode, filter); err != nil {
		return nil, err
	}

	items, err := s.records.ListItems(ctx, projectID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list items",
			slog.String("operation", "LogView"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return timeline.GroupItems(items, mode), nil
}

// MilestoneView returns the project's milestones bucketed by stage along
// with the current-stage and today-position projections.
func (s *TimelineService) MilestoneView(ctx context.Context, projectID string, today string) (*timeline.MilestoneView, error) {
	s.logger.InfoContext(ctx, "computing milestone view",
		slog.String("project_id", projectID),
		slog.String("today", today),
	)

	if projectID == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"project_id": domain.MsgRequired}}
	}

	day := s.now()
	if today != "" {
		parsed, err := timeline.ParseLocalDate(today)
		if err != nil {
			return nil, &domain.ValidationError{Fields: map[string]string{"today": "must be a YYYY-MM-DD date"}}
		}
		day = parsed
	}

	milestones, err := s.records.ListItems(ctx, projectID, item.Filter{MilestoneOnly: true})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list milestones",
			slog.String("operation", "MilestoneView"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing milestones: %w", err)
	}

	stages, err := s.records.ListStages(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stages",
			slog.String("operation", "MilestoneView"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing stages: %w", err)
	}

	view := timeline.BuildMilestoneView(milestones, stages, day)
	return &view, nil
}

// PortfolioLogViews computes the date-grouped log view for every visible
// project concurrently with partial success semantics.
func (s *TimelineService) PortfolioLogViews(ctx context.Context) (*ports.PortfolioResult, error) {
	s.logger.InfoContext(ctx, "computing portfolio log views")

	projectIDs, err := s.records.ListProjects(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "PortfolioLogViews"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	results := fanout.Run(ctx, s.workers, projectIDs, func(ctx context.Context, projectID string) (ports.ProjectLog, error) {
		items, err := s.records.ListItems(ctx, projectID, item.Filter{})
		if err != nil {
			return ports.ProjectLog{}, err
		}
		return ports.ProjectLog{
			ProjectID: projectID,
			Groups:    timeline.GroupByDate(items),
		}, nil
	})

	out := &ports.PortfolioResult{}
	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "portfolio project failed",
				slog.String("operation", "PortfolioLogViews"),
				slog.String("project_id", projectIDs[i]),
				slog.Any("error", r.Err),
			)
			out.Errors = append(out.Errors, ports.PortfolioError{ProjectID: projectIDs[i], Err: r.Err})
			continue
		}
		out.Logs = append(out.Logs, r.Value)
	}
	return out, nil
}

// validateLogRequest checks log view inputs before any downstream call.
func validateLogRequest(projectID string, mode timeline.GroupMode, filter item.Filter) error {
	fields := make(map[string]string)

	if projectID == "" {
		fields["project_id"] = domain.MsgRequired
	}
	if !mode.IsValid() {
		fields["group_by"] = "must be one of: date, discipline"
	}
	if filter.Kind != "" && !filter.Kind.IsValid() {
		fields["kind"] = "must be one of: decision, action, topic"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
