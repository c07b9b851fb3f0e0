package timeline

import (
	"time"

	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/stage"
)

// BucketOther collects milestones whose effective date falls inside no
// supplied stage.
const BucketOther = "other"

// maxPercent and the implicit zero bound clamp the today marker to the
// drawable range.
const maxPercent = 100.0

// AssignStages buckets milestone items by the stage whose inclusive [from,
// to] range contains the item's effective date, comparing calendar days
// only. Stages are scanned in supplied order and the first match wins, so a
// milestone lands in exactly one bucket even when stage ranges overlap.
// Unmatched milestones land in BucketOther. Only non-empty buckets appear in
// the result.
func AssignStages(milestones []item.Item, stages []stage.Stage) map[string][]item.Item {
	buckets := make(map[string][]item.Item)

	for i := range milestones {
		day := dateOnly(milestones[i].EffectiveDate())

		key := BucketOther
		for j := range stages {
			if !day.Before(dateOnly(stages[j].From)) && !day.After(dateOnly(stages[j].To)) {
				key = stages[j].ID
				break
			}
		}
		buckets[key] = append(buckets[key], milestones[i])
	}

	return buckets
}

// CurrentStage returns the first stage, in supplied order, whose range
// contains today, or nil when none does. Today is normalized to start of
// day and each stage's upper bound to end of day, so a stage ending on a
// given calendar day still counts that whole day as current.
func CurrentStage(stages []stage.Stage, today time.Time) *stage.Stage {
	day := dateOnly(today)

	for i := range stages {
		if !day.Before(stages[i].From) && !day.After(endOfDay(stages[i].To)) {
			s := stages[i]
			return &s
		}
	}
	return nil
}

// TodayPosition returns the proportional position of today along the full
// stage timeline as a percentage in [0, 100], using the supplied stage
// order. The second return value is false for an empty or degenerate
// timeline (zero or negative total range), signaling "no marker".
func TodayPosition(stages []stage.Stage, today time.Time) (float64, bool) {
	if len(stages) == 0 {
		return 0, false
	}

	start := stages[0].From
	total := stages[len(stages)-1].To.Sub(start)
	if total <= 0 {
		return 0, false
	}

	pct := float64(today.Sub(start)) / float64(total) * maxPercent
	if pct < 0 {
		pct = 0
	}
	if pct > maxPercent {
		pct = maxPercent
	}
	return pct, true
}

// MilestoneView is the composed milestone-timeline projection served to the
// milestone-view collaborator.
type MilestoneView struct {
	Stages       []stage.Stage
	Buckets      map[string][]item.Item
	Current      *stage.Stage
	TodayPercent *float64 // nil when the timeline is degenerate
}

// BuildMilestoneView runs the stage assigner, current-stage resolver, and
// today projector over the inputs and bundles the results.
func BuildMilestoneView(milestones []item.Item, stages []stage.Stage, today time.Time) MilestoneView {
	view := MilestoneView{
		Stages:  stages,
		Buckets: AssignStages(milestones, stages),
		Current: CurrentStage(stages, today),
	}
	if pct, ok := TodayPosition(stages, today); ok {
		view.TodayPercent = &pct
	}
	return view
}

// dateOnly truncates a time to its calendar day in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable millisecond of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
