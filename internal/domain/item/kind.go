// Package item defines the project item entity: decisions, action items, and
// topics collected from meetings, emails, and documents.
package item

// Kind represents the type of a project item.
type Kind string

const (
	KindDecision Kind = "decision"
	KindAction   Kind = "action"
	KindTopic    Kind = "topic"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindDecision, KindAction, KindTopic:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
