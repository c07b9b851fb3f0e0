package item

// Discipline is a free-form discipline tag (e.g. "structural",
// "architecture", "mechanical"). The set is not closed: tags come from the
// records API as entered by project teams.
type Discipline string

// DisciplineGeneral is the sentinel discipline for items with no tags.
const DisciplineGeneral Discipline = "general"

// String implements fmt.Stringer.
func (d Discipline) String() string {
	return string(d)
}
