package entry

import (
	"time"

	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
)

// ToDomainItem converts a downstream EntryDTO to a domain Item.
//
// Date handling is deliberately forgiving: a malformed occurred_at is
// dropped so the item falls back to its creation date, and a malformed
// created_at leaves the zero time so the item surfaces in the "Undated"
// group instead of being lost.
func ToDomainItem(dto *EntryDTO) item.Item {
	var createdAt time.Time
	if t, err := timeline.ParseLocalDate(dto.CreatedAt); err == nil {
		createdAt = t
	}

	return item.Item{
		ID:          dto.ID,
		ProjectID:   dto.ProjectID,
		Title:       dto.Title,
		Kind:        item.Kind(dto.Type),
		OccurredAt:  parseOptionalDate(dto.OccurredAt),
		CreatedAt:   createdAt,
		Source:      toDomainSource(dto.Source),
		Disciplines: toDisciplines(dto.Disciplines),
		Milestone:   dto.Milestone,
	}
}

// ToDomainItems converts a downstream ListResponseDTO to a slice of domain
// Items.
func ToDomainItems(dto ListResponseDTO) []item.Item {
	items := make([]item.Item, len(dto.Entries))
	for i := range dto.Entries {
		items[i] = ToDomainItem(&dto.Entries[i])
	}
	return items
}

func toDomainSource(dto *SourceDTO) *item.SourceRef {
	if dto == nil {
		return nil
	}
	return &item.SourceRef{
		ID:         dto.ID,
		Title:      dto.Title,
		Kind:       item.SourceKind(dto.Kind),
		OccurredAt: parseOptionalDate(dto.OccurredAt),
	}
}

func toDisciplines(tags []string) []item.Discipline {
	if len(tags) == 0 {
		return nil
	}
	out := make([]item.Discipline, len(tags))
	for i, tag := range tags {
		out[i] = item.Discipline(tag)
	}
	return out
}

// parseOptionalDate returns nil for empty or malformed date strings.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := timeline.ParseLocalDate(value)
	if err != nil {
		return nil
	}
	return &t
}
