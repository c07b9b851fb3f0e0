// Package stage defines the project schedule stage entity: a named date
// range representing one phase of a project's schedule.
package stage

import (
	"strings"
	"time"

	"github.com/buildsight/timeline-service/internal/domain"
)

// Stage represents a phase of a project's schedule. Stages are expected to
// be non-overlapping and supplied in chronological order; the timeline engine
// does not enforce this and resolves overlaps by first match in supplied
// order.
type Stage struct {
	ID    string
	Name  string
	From  time.Time
	To    time.Time
	Order int
}

// Validate checks business rules for the Stage entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (s *Stage) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(s.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if s.From.IsZero() {
		fields["from"] = domain.MsgRequired
	}
	if s.To.IsZero() {
		fields["to"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
