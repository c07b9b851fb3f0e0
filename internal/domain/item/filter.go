package item

// Filter holds optional filter criteria for listing items.
// Zero-value fields mean "no filter" for that dimension. Filtering semantics
// are owned by the records API; the filter is forwarded as query parameters.
type Filter struct {
	Kind          Kind
	Discipline    Discipline
	MilestoneOnly bool
}
