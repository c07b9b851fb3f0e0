package phase

import (
	"sort"

	"github.com/buildsight/timeline-service/internal/domain/stage"
	"github.com/buildsight/timeline-service/internal/domain/timeline"
)

// ToDomainStages converts a downstream ListResponseDTO to a slice of domain
// Stages ordered by their downstream order field.
//
// A phase with an unparsable bound is excluded entirely rather than carried
// with a zero time, which would silently swallow milestone assignment for
// every date before it.
func ToDomainStages(dto ListResponseDTO) []stage.Stage {
	stages := make([]stage.Stage, 0, len(dto.Phases))
	for i := range dto.Phases {
		s, ok := toDomainStage(&dto.Phases[i])
		if !ok {
			continue
		}
		stages = append(stages, s)
	}

	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Order < stages[j].Order
	})
	return stages
}

func toDomainStage(dto *PhaseDTO) (stage.Stage, bool) {
	from, err := timeline.ParseLocalDate(dto.StartsOn)
	if err != nil {
		return stage.Stage{}, false
	}
	to, err := timeline.ParseLocalDate(dto.EndsOn)
	if err != nil {
		return stage.Stage{}, false
	}

	return stage.Stage{
		ID:    dto.ID,
		Name:  dto.Name,
		From:  from,
		To:    to,
		Order: dto.Order,
	}, true
}
