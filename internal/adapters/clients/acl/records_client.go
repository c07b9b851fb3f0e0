package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/buildsight/timeline-service/internal/adapters/clients/acl/entry"
	"github.com/buildsight/timeline-service/internal/adapters/clients/acl/phase"
	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/stage"
	"github.com/buildsight/timeline-service/internal/platform/httpclient"
	"github.com/buildsight/timeline-service/internal/ports"
)

// Compile-time interface check.
var _ ports.RecordsClient = (*RecordsClient)(nil)

// RecordsClient is the outbound adapter for the downstream records API. It
// implements [ports.RecordsClient].
//
// All methods translate between our domain types and the downstream API's
// representations via the ACL translators in sub-packages [entry] and
// [phase]. HTTP errors are mapped to domain errors (ErrNotFound,
// ErrUnavailable, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, and OpenTelemetry tracing for
// every outbound call; it also serves as the [ports.HealthChecker] for the
// records API.
type RecordsClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewRecordsClient creates a RecordsClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the
// downstream records API root. The logger is used for error-level
// diagnostics on failed or unexpected responses.
func NewRecordsClient(client *httpclient.Client, logger *slog.Logger) *RecordsClient {
	return &RecordsClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListItems fetches decision log entries from
// GET /api/v1/projects/{id}/entries, optionally filtered by kind,
// discipline, and milestone flag. Returns [domain.ErrNotFound] if the
// downstream API returns 404 for the project.
func (c *RecordsClient) ListItems(ctx context.Context, projectID string, filter item.Filter) ([]item.Item, error) {
	path := "/api/v1/projects/" + url.PathEscape(projectID) + "/entries" + filterQuery(filter)

	var dto entry.ListResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return entry.ToDomainItems(dto), nil
}

// ListStages fetches configured phases from
// GET /api/v1/projects/{id}/phases and returns them as domain stages in
// downstream order. Returns [domain.ErrNotFound] if the downstream API
// returns 404 for the project.
func (c *RecordsClient) ListStages(ctx context.Context, projectID string) ([]stage.Stage, error) {
	path := "/api/v1/projects/" + url.PathEscape(projectID) + "/phases"

	var dto phase.ListResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return phase.ToDomainStages(dto), nil
}

// projectListDTO wraps the project collection returned by GET /api/v1/projects.
type projectListDTO struct {
	Projects []struct {
		ID string `json:"id"`
	} `json:"projects"`
}

// ListProjects fetches visible project IDs from GET /api/v1/projects for
// portfolio-wide aggregation.
func (c *RecordsClient) ListProjects(ctx context.Context) ([]string, error) {
	var dto projectListDTO
	if err := c.req.Get(ctx, "/api/v1/projects", &dto); err != nil {
		return nil, err
	}

	ids := make([]string, len(dto.Projects))
	for i, p := range dto.Projects {
		ids[i] = p.ID
	}
	return ids, nil
}

// filterQuery builds the query string for entry listing. Zero-value filter
// fields are omitted.
func filterQuery(filter item.Filter) string {
	q := url.Values{}
	if filter.Kind != "" {
		q.Set("kind", string(filter.Kind))
	}
	if filter.Discipline != "" {
		q.Set("discipline", string(filter.Discipline))
	}
	if filter.MilestoneOnly {
		q.Set("milestone", "true")
	}

	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
