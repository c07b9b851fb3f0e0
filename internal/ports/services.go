package ports

import (
	"context"

	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
)

// TimelineService defines the service port for computed timeline views.
// Implemented by the application layer; called by inbound adapters (handlers).
// All views are derived on demand from downstream records; nothing is stored.
type TimelineService interface {
	// LogView returns the project's decision log grouped per the given mode,
	// most recent day first for date mode, alphabetical for discipline mode.
	// Returns domain.ErrNotFound if the project does not exist.
	// Returns domain.ErrValidation if the mode or filter is invalid.
	LogView(ctx context.Context, projectID string, mode timeline.GroupMode, filter item.Filter) ([]timeline.Group, error)

	// MilestoneView returns the project's milestones bucketed by stage,
	// the stage containing today, and today's position along the overall
	// stage range. An empty today means "use the current clock"; otherwise
	// today must be a YYYY-MM-DD date.
	// Returns domain.ErrNotFound if the project does not exist.
	// Returns domain.ErrValidation if today is malformed.
	MilestoneView(ctx context.Context, projectID string, today string) (*timeline.MilestoneView, error)

	// PortfolioLogViews computes the date-grouped log view for every visible
	// project concurrently. Uses partial success semantics: each project
	// succeeds or fails independently. Returns a hard error only for
	// request-level failures (listing projects). Individual project failures
	// are collected in PortfolioResult.Errors.
	PortfolioLogViews(ctx context.Context) (*PortfolioResult, error)
}

// ProjectLog pairs a project ID with its computed log view for portfolio
// aggregation.
type ProjectLog struct {
	ProjectID string
	Groups    []timeline.Group
}

// PortfolioError records a single failed project within a portfolio
// aggregation.
type PortfolioError struct {
	ProjectID string
	Err       error
}

// PortfolioResult holds the outcomes of a portfolio aggregation.
// Logs contains successfully computed views; Errors contains per-project
// failures.
type PortfolioResult struct {
	Logs   []ProjectLog
	Errors []PortfolioError
}
