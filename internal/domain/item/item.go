package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/buildsight/timeline-service/internal/domain"
)

// Item represents a single project record: a decision, action item, or topic
// collected from a meeting, email, or document, or entered manually.
type Item struct {
	ID          string
	ProjectID   string
	Title       string
	Kind        Kind
	OccurredAt  *time.Time // when the underlying event happened; nil if unknown
	CreatedAt   time.Time  // when the record was captured
	Source      *SourceRef
	Disciplines []Discipline
	Milestone   bool
}

// EffectiveDate returns the date used for grouping and stage placement:
// the event occurrence date when present, otherwise the record creation date.
// A well-formed item always has at least a creation date; items whose dates
// could not be parsed upstream carry the zero time and are routed to the
// undated group by the timeline engine.
func (i *Item) EffectiveDate() time.Time {
	if i.OccurredAt != nil {
		return *i.OccurredAt
	}
	return i.CreatedAt
}

// PrimaryDiscipline returns the first discipline tag, or DisciplineGeneral
// when the item carries no tags.
func (i *Item) PrimaryDiscipline() Discipline {
	if len(i.Disciplines) == 0 {
		return DisciplineGeneral
	}
	return i.Disciplines[0]
}

// Orphan reports whether the item has no originating source: either no
// source reference at all, or a manual-entry source.
func (i *Item) Orphan() bool {
	return i.Source == nil || i.Source.Kind == SourceManual
}

// Validate checks business rules for the Item entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (i *Item) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(i.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !i.Kind.IsValid() {
		fields["kind"] = fmt.Sprintf("invalid: %q", i.Kind)
	}
	if i.Source != nil && !i.Source.Kind.IsValid() {
		fields["source.kind"] = fmt.Sprintf("invalid: %q", i.Source.Kind)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
