package timeline

import (
	"testing"
	"time"

	"github.com/buildsight/timeline-service/internal/domain/item"
)

func timePtr(t time.Time) *time.Time { return &t }

func itemOn(id string, day time.Time, source *item.SourceRef) item.Item {
	return item.Item{
		ID:         id,
		ProjectID:  "p-1",
		Title:      "Item " + id,
		Kind:       item.KindDecision,
		OccurredAt: timePtr(day),
		CreatedAt:  day,
		Source:     source,
	}
}

func meetingRef(id, title string) *item.SourceRef {
	return &item.SourceRef{ID: id, Title: title, Kind: item.SourceMeeting}
}

var (
	feb5 = time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	feb8 = time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
)

func TestGroupByDate_OrdersGroupsDescending(t *testing.T) {
	t.Parallel()

	items := []item.Item{
		itemOn("a", feb5, meetingRef("tr-2", "Owner sync")),
		itemOn("b", feb8, meetingRef("tr-1", "Site walk")),
		itemOn("c", feb8, meetingRef("tr-1", "Site walk")),
	}

	groups := GroupByDate(items)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].Key != "2026-02-08" || groups[1].Key != "2026-02-05" {
		t.Errorf("group keys = [%q, %q], want [2026-02-08, 2026-02-05]", groups[0].Key, groups[1].Key)
	}
	if groups[0].Label != "FEB 8, 2026" {
		t.Errorf("Label = %q, want %q", groups[0].Label, "FEB 8, 2026")
	}
	if groups[0].TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", groups[0].TotalCount)
	}
}

func TestGroupByDate_SplitsOrphansFromSourceGroups(t *testing.T) {
	t.Parallel()

	items := []item.Item{
		itemOn("a", feb8, nil),
		itemOn("b", feb8, meetingRef("tr-1", "Site walk")),
	}

	groups := GroupByDate(items)

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	g := groups[0]
	if len(g.Orphans) != 1 {
		t.Errorf("len(Orphans) = %d, want 1", len(g.Orphans))
	}
	if len(g.SourceGroups) != 1 {
		t.Errorf("len(SourceGroups) = %d, want 1", len(g.SourceGroups))
	}
	if g.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", g.TotalCount)
	}
}

func TestGroupByDate_ManualSourceIsOrphan(t *testing.T) {
	t.Parallel()

	manual := &item.SourceRef{ID: "m-1", Kind: item.SourceManual}
	groups := GroupByDate([]item.Item{itemOn("a", feb8, manual)})

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	if len(groups[0].Orphans) != 1 || len(groups[0].SourceGroups) != 0 {
		t.Errorf("manual-entry item not treated as orphan: %+v", groups[0])
	}
}

func TestGroupByDate_UntitledSourceFallback(t *testing.T) {
	t.Parallel()

	groups := GroupByDate([]item.Item{
		itemOn("a", feb8, &item.SourceRef{ID: "tr-1", Kind: item.SourceEmail}),
	})

	if got := groups[0].SourceGroups[0].Source.Title; got != item.UntitledSource {
		t.Errorf("Source.Title = %q, want %q", got, item.UntitledSource)
	}
}

func TestGroupByDate_SourceNeverMergesAcrossDays(t *testing.T) {
	t.Parallel()

	// Same source ID on two different days stays in two separate groups.
	items := []item.Item{
		itemOn("a", feb8, meetingRef("tr-1", "Site walk")),
		itemOn("b", feb5, meetingRef("tr-1", "Site walk")),
	}

	groups := GroupByDate(items)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	for _, g := range groups {
		if len(g.SourceGroups) != 1 || len(g.SourceGroups[0].Items) != 1 {
			t.Errorf("group %q: source groups merged across days: %+v", g.Key, g.SourceGroups)
		}
	}
}

func TestGroupByDate_SourceGroupsOrderedByFirstItemDescending(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 2, 8, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 2, 8, 18, 0, 0, 0, time.UTC)

	items := []item.Item{
		itemOn("a", morning, meetingRef("tr-early", "Morning standup")),
		itemOn("b", evening, meetingRef("tr-late", "Evening review")),
	}

	groups := GroupByDate(items)

	if len(groups) != 1 || len(groups[0].SourceGroups) != 2 {
		t.Fatalf("unexpected grouping: %+v", groups)
	}
	if groups[0].SourceGroups[0].Source.ID != "tr-late" {
		t.Errorf("first source group = %q, want tr-late (most recent first)", groups[0].SourceGroups[0].Source.ID)
	}
}

func TestGroupByDate_UndatedItemsSortLast(t *testing.T) {
	t.Parallel()

	undated := item.Item{ID: "u", Title: "Undated item", Kind: item.KindTopic}
	groups := GroupByDate([]item.Item{undated, itemOn("a", feb8, nil)})

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	last := groups[len(groups)-1]
	if last.Key != string(KeyUndated) {
		t.Errorf("last group key = %q, want %q", last.Key, KeyUndated)
	}
	if last.Label != "Undated" {
		t.Errorf("last group label = %q, want %q", last.Label, "Undated")
	}
}

func TestGroupByDate_EmptyInput(t *testing.T) {
	t.Parallel()

	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Errorf("GroupByDate(nil) = %v, want empty", groups)
	}
}

func TestGroupByDiscipline_OrdersGroupsAscending(t *testing.T) {
	t.Parallel()

	structural := itemOn("a", feb8, nil)
	structural.Disciplines = []item.Discipline{"structural"}
	architecture := itemOn("b", feb5, nil)
	architecture.Disciplines = []item.Discipline{"architecture"}

	groups := GroupByDiscipline([]item.Item{structural, architecture})

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].Key != "architecture" || groups[1].Key != "structural" {
		t.Errorf("group keys = [%q, %q], want [architecture, structural]", groups[0].Key, groups[1].Key)
	}
	if groups[0].Label != "ARCHITECTURE" {
		t.Errorf("Label = %q, want %q", groups[0].Label, "ARCHITECTURE")
	}
}

func TestGroupByDiscipline_DefaultsToGeneral(t *testing.T) {
	t.Parallel()

	groups := GroupByDiscipline([]item.Item{itemOn("a", feb8, nil)})

	if len(groups) != 1 || groups[0].Key != string(item.DisciplineGeneral) {
		t.Errorf("untagged item grouped as %+v, want %q", groups, item.DisciplineGeneral)
	}
}

func TestGroupByDiscipline_UsesFirstTagOnly(t *testing.T) {
	t.Parallel()

	it := itemOn("a", feb8, nil)
	it.Disciplines = []item.Discipline{"mechanical", "electrical"}

	groups := GroupByDiscipline([]item.Item{it})

	if len(groups) != 1 || groups[0].Key != "mechanical" {
		t.Errorf("groups = %+v, want single mechanical group", groups)
	}
}

// TestGroupItems_PartitionProperty verifies that the multiset union of
// orphans and all source group items across all returned groups equals the
// input exactly, in both modes.
func TestGroupItems_PartitionProperty(t *testing.T) {
	t.Parallel()

	tagged := itemOn("d", feb5, meetingRef("tr-2", "Owner sync"))
	tagged.Disciplines = []item.Discipline{"structural"}

	items := []item.Item{
		itemOn("a", feb8, meetingRef("tr-1", "Site walk")),
		itemOn("b", feb8, meetingRef("tr-1", "Site walk")),
		itemOn("c", feb8, nil),
		tagged,
		{ID: "u", Title: "Undated", Kind: item.KindTopic},
	}

	for _, mode := range []GroupMode{ModeDate, ModeDiscipline} {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			groups := GroupItems(items, mode)

			seen := make(map[string]int)
			total := 0
			for _, g := range groups {
				count := len(g.Orphans)
				for _, it := range g.Orphans {
					seen[it.ID]++
				}
				for _, sg := range g.SourceGroups {
					count += len(sg.Items)
					for _, it := range sg.Items {
						seen[it.ID]++
					}
				}
				if count != g.TotalCount {
					t.Errorf("group %q: TotalCount = %d, actual items %d", g.Key, g.TotalCount, count)
				}
				total += count
			}

			if total != len(items) {
				t.Errorf("partition lost or duplicated items: got %d, want %d", total, len(items))
			}
			for _, it := range items {
				if seen[it.ID] != 1 {
					t.Errorf("item %q appears %d times, want exactly 1", it.ID, seen[it.ID])
				}
			}
		})
	}
}

// TestGroupItems_Idempotent verifies that grouping the same input twice
// yields structurally identical output.
func TestGroupItems_Idempotent(t *testing.T) {
	t.Parallel()

	items := []item.Item{
		itemOn("a", feb8, meetingRef("tr-1", "Site walk")),
		itemOn("b", feb5, nil),
	}

	first := GroupItems(items, ModeDate)
	second := GroupItems(items, ModeDate)

	if len(first) != len(second) {
		t.Fatalf("len mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key || first[i].TotalCount != second[i].TotalCount {
			t.Errorf("group %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
