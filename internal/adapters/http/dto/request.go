package dto

import (
	"net/url"

	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
)

// LogQuery holds the parsed query parameters for the log view endpoint.
// All views are read-only, so request input arrives as query strings rather
// than JSON bodies.
type LogQuery struct {
	Mode   timeline.GroupMode
	Filter item.Filter
}

// ParseLogQuery extracts log view parameters from the request query string.
// group_by defaults to "date" when absent. Validation of the resulting
// values is the application layer's responsibility; the DTO layer only maps
// the wire shape.
func ParseLogQuery(q url.Values) LogQuery {
	mode := timeline.ModeDate
	if raw := q.Get("group_by"); raw != "" {
		mode = timeline.GroupMode(raw)
	}

	return LogQuery{
		Mode: mode,
		Filter: item.Filter{
			Kind:          item.Kind(q.Get("kind")),
			Discipline:    item.Discipline(q.Get("discipline")),
			MilestoneOnly: q.Get("milestone") == "true",
		},
	}
}
