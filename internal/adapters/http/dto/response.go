package dto

import (
	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/stage"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
	"github.com/buildsight/timeline-service/internal/ports"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// ItemResponse represents a decision log item in API responses.
type ItemResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Kind        string          `json:"kind"`
	Date        string          `json:"date,omitempty"`
	Source      *SourceResponse `json:"source,omitempty"`
	Disciplines []string        `json:"disciplines,omitempty"`
	Milestone   bool            `json:"milestone"`
}

// SourceResponse represents an item's originating record.
type SourceResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

// SourceGroupResponse represents items sharing an originating record within
// a log group.
type SourceGroupResponse struct {
	Source SourceResponse `json:"source"`
	Items  []ItemResponse `json:"items"`
}

// GroupResponse represents one primary grouping bucket of the log view.
type GroupResponse struct {
	Key          string                `json:"key"`
	Label        string                `json:"label"`
	TotalCount   int                   `json:"total_count"`
	SourceGroups []SourceGroupResponse `json:"source_groups"`
	Orphans      []ItemResponse        `json:"orphans"`
}

// LogViewResponse wraps the grouped log view.
type LogViewResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// StageResponse represents a configured timeline stage.
type StageResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	From  string `json:"from"`
	To    string `json:"to"`
	Order int    `json:"order"`
}

// MilestoneViewResponse represents the stage-bucketed milestone projection.
// CurrentStageID is empty when today falls inside no stage; TodayPercent is
// null when the stage timeline is degenerate.
type MilestoneViewResponse struct {
	Stages         []StageResponse           `json:"stages"`
	Buckets        map[string][]ItemResponse `json:"buckets"`
	CurrentStageID string                    `json:"current_stage_id,omitempty"`
	TodayPercent   *float64                  `json:"today_percent"`
}

// ProjectLogResponse pairs a project with its computed log view in the
// portfolio response.
type ProjectLogResponse struct {
	ProjectID string          `json:"project_id"`
	Groups    []GroupResponse `json:"groups"`
}

// PortfolioErrorResponse records a project whose view could not be computed.
type PortfolioErrorResponse struct {
	ProjectID string `json:"project_id"`
	Error     string `json:"error"`
}

// PortfolioResponse wraps the portfolio-wide log views with partial success
// semantics.
type PortfolioResponse struct {
	Projects []ProjectLogResponse     `json:"projects"`
	Errors   []PortfolioErrorResponse `json:"errors,omitempty"`
}

// ToLogViewResponse converts grouped domain output to the wire shape.
func ToLogViewResponse(groups []timeline.Group) LogViewResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = toGroupResponse(&groups[i])
	}
	return LogViewResponse{Groups: out}
}

// ToMilestoneViewResponse converts a domain MilestoneView to the wire shape.
func ToMilestoneViewResponse(view *timeline.MilestoneView) MilestoneViewResponse {
	stages := make([]StageResponse, len(view.Stages))
	for i := range view.Stages {
		stages[i] = toStageResponse(&view.Stages[i])
	}

	buckets := make(map[string][]ItemResponse, len(view.Buckets))
	for key, items := range view.Buckets {
		buckets[key] = toItemResponses(items)
	}

	resp := MilestoneViewResponse{
		Stages:       stages,
		Buckets:      buckets,
		TodayPercent: view.TodayPercent,
	}
	if view.Current != nil {
		resp.CurrentStageID = view.Current.ID
	}
	return resp
}

// ToPortfolioResponse converts a portfolio aggregation result to the wire
// shape. Failed projects carry their error message alongside successes.
func ToPortfolioResponse(result *ports.PortfolioResult) PortfolioResponse {
	projects := make([]ProjectLogResponse, len(result.Logs))
	for i, log := range result.Logs {
		projects[i] = ProjectLogResponse{
			ProjectID: log.ProjectID,
			Groups:    ToLogViewResponse(log.Groups).Groups,
		}
	}

	var errs []PortfolioErrorResponse
	for _, e := range result.Errors {
		errs = append(errs, PortfolioErrorResponse{
			ProjectID: e.ProjectID,
			Error:     e.Err.Error(),
		})
	}

	return PortfolioResponse{Projects: projects, Errors: errs}
}

func toGroupResponse(g *timeline.Group) GroupResponse {
	sourceGroups := make([]SourceGroupResponse, len(g.SourceGroups))
	for i := range g.SourceGroups {
		sourceGroups[i] = SourceGroupResponse{
			Source: toSourceResponse(&g.SourceGroups[i].Source),
			Items:  toItemResponses(g.SourceGroups[i].Items),
		}
	}

	return GroupResponse{
		Key:          g.Key,
		Label:        g.Label,
		TotalCount:   g.TotalCount,
		SourceGroups: sourceGroups,
		Orphans:      toItemResponses(g.Orphans),
	}
}

func toItemResponses(items []item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = toItemResponse(&items[i])
	}
	return out
}

func toItemResponse(it *item.Item) ItemResponse {
	resp := ItemResponse{
		ID:        it.ID,
		Title:     it.Title,
		Kind:      string(it.Kind),
		Milestone: it.Milestone,
	}

	if date := it.EffectiveDate(); !date.IsZero() {
		resp.Date = date.Format(dateLayout)
	}
	if it.Source != nil {
		src := toSourceResponse(it.Source)
		resp.Source = &src
	}
	if len(it.Disciplines) > 0 {
		resp.Disciplines = make([]string, len(it.Disciplines))
		for i, d := range it.Disciplines {
			resp.Disciplines[i] = string(d)
		}
	}
	return resp
}

func toSourceResponse(src *item.SourceRef) SourceResponse {
	return SourceResponse{
		ID:    src.ID,
		Title: src.DisplayTitle(),
		Kind:  string(src.Kind),
	}
}

func toStageResponse(s *stage.Stage) StageResponse {
	return StageResponse{
		ID:    s.ID,
		Name:  s.Name,
		From:  s.From.Format(dateLayout),
		To:    s.To.Format(dateLayout),
		Order: s.Order,
	}
}
