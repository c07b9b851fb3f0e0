package item

import "time"

// SourceKind tags the origin of a source reference. Items recorded by hand
// carry SourceManual and are treated as orphans by the grouping engine.
type SourceKind string

const (
	SourceMeeting  SourceKind = "meeting"
	SourceEmail    SourceKind = "email"
	SourceDocument SourceKind = "document"
	SourceManual   SourceKind = "manual"
)

// IsValid returns true if the source kind is one of the defined constants.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceMeeting, SourceEmail, SourceDocument, SourceManual:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k SourceKind) String() string {
	return string(k)
}

// UntitledSource is the display title for sources without one.
const UntitledSource = "Untitled Source"

// SourceRef identifies the meeting, email, or document an item was collected
// from.
type SourceRef struct {
	ID         string
	Title      string
	Kind       SourceKind
	OccurredAt *time.Time
}

// DisplayTitle returns the source title, falling back to UntitledSource when
// the title is empty.
func (s *SourceRef) DisplayTitle() string {
	if s.Title == "" {
		return UntitledSource
	}
	return s.Title
}
