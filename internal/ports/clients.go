package ports

import (
	"context"

	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/stage"
)

// RecordsClient defines the client port for the downstream records API.
// Implemented by the ACL adapter; called by the application layer.
// The ACL translates between our "Item" and "Stage" concepts and the
// downstream "entry" and "phase" concepts.
type RecordsClient interface {
	// ListItems returns decision log items for a project matching the given
	// filter criteria. Pass a zero-value Filter to list all items.
	// Returns domain.ErrNotFound if the project does not exist.
	ListItems(ctx context.Context, projectID string, filter item.Filter) ([]item.Item, error)

	// ListStages returns the configured timeline stages for a project in
	// their downstream order. An empty slice means no stages are configured.
	// Returns domain.ErrNotFound if the project does not exist.
	ListStages(ctx context.Context, projectID string) ([]stage.Stage, error)

	// ListProjects returns the identifiers of all projects visible to the
	// service, used for portfolio-wide aggregation.
	ListProjects(ctx context.Context) ([]string, error)
}
