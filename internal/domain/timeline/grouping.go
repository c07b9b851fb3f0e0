package timeline

import (
	"sort"
	"strings"

	"github.com/buildsight/timeline-service/internal/domain/item"
)

// GroupMode selects the primary grouping dimension for the log view.
type GroupMode string

const (
	ModeDate       GroupMode = "date"
	ModeDiscipline GroupMode = "discipline"
)

// IsValid returns true if the mode is one of the defined constants.
func (m GroupMode) IsValid() bool {
	switch m {
	case ModeDate, ModeDiscipline:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m GroupMode) String() string {
	return string(m)
}

// SourceGroup is the sub-grouping of items sharing the same originating
// meeting, email, or document within a primary group. Source metadata is
// taken from the first item encountered for the source ID.
type SourceGroup struct {
	Source item.SourceRef
	Items  []item.Item
}

// Group is one primary bucket of the log view: a calendar day (date mode) or
// a discipline (discipline mode). TotalCount always equals the orphan count
// plus the sum of all source group item counts, and every input item lands
// in exactly one group.
type Group struct {
	Key          string
	Label        string
	TotalCount   int
	SourceGroups []SourceGroup
	Orphans      []item.Item
}

// GroupItems partitions items into the two-level log hierarchy using the
// given mode. Unknown modes fall back to date grouping.
func GroupItems(items []item.Item, mode GroupMode) []Group {
	if mode == ModeDiscipline {
		return GroupByDiscipline(items)
	}
	return GroupByDate(items)
}

// GroupByDate groups items by the calendar day of their effective date.
// Groups are ordered by date key descending (most recent day first); undated
// items sort last.
func GroupByDate(items []item.Item) []Group {
	return group(items, func(it *item.Item) (string, string) {
		key := KeyFor(it.EffectiveDate())
		return string(key), key.Label()
	}, false)
}

// GroupByDiscipline groups items by their primary discipline tag. Groups are
// ordered by key ascending, alphabetically. The ordering direction is
// intentionally the opposite of date mode.
func GroupByDiscipline(items []item.Item) []Group {
	return group(items, func(it *item.Item) (string, string) {
		d := it.PrimaryDiscipline().String()
		return d, strings.ToUpper(d)
	}, true)
}

// group is the shared bucketing machinery for both modes. keyFn derives the
// primary bucket key and display label for an item; ascending selects the
// bucket sort direction.
func group(items []item.Item, keyFn func(*item.Item) (string, string), ascending bool) []Group {
	keys := make([]string, 0)
	labels := make(map[string]string)
	buckets := make(map[string][]item.Item)

	for i := range items {
		key, label := keyFn(&items[i])
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
			labels[key] = label
		}
		buckets[key] = append(buckets[key], items[i])
	}

	sort.Slice(keys, func(a, b int) bool {
		if ascending {
			return keys[a] < keys[b]
		}
		return keys[a] > keys[b]
	})

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, buildGroup(key, labels[key], buckets[key]))
	}
	return groups
}

// buildGroup assembles a single primary bucket: orphans are split from
// source-attributed items, source groups form in first-encounter order with
// metadata from the first item seen for each source ID, and are then sorted
// by their first item's effective date, most recent first. Source grouping
// is always scoped to the bucket; the same source ID on different days forms
// separate groups.
func buildGroup(key, label string, items []item.Item) Group {
	g := Group{Key: key, Label: label, TotalCount: len(items)}

	index := make(map[string]int)
	for i := range items {
		it := items[i]
		if it.Orphan() {
			g.Orphans = append(g.Orphans, it)
			continue
		}

		j, ok := index[it.Source.ID]
		if !ok {
			j = len(g.SourceGroups)
			index[it.Source.ID] = j

			meta := *it.Source
			meta.Title = it.Source.DisplayTitle()
			g.SourceGroups = append(g.SourceGroups, SourceGroup{Source: meta})
		}
		g.SourceGroups[j].Items = append(g.SourceGroups[j].Items, it)
	}

	sort.SliceStable(g.SourceGroups, func(a, b int) bool {
		first := g.SourceGroups[a].Items[0].EffectiveDate()
		second := g.SourceGroups[b].Items[0].EffectiveDate()
		return first.After(second)
	})

	return g
}
