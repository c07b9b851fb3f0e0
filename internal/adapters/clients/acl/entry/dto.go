// Package entry translates the downstream records API's "entry"
// representation into domain decision log items.
package entry

// EntryDTO represents a single decision log entry as returned by the
// downstream records API. Timestamps are RFC 3339 strings or plain
// YYYY-MM-DD dates; translation tolerates malformed values.
type EntryDTO struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	OccurredAt  string     `json:"occurred_at,omitempty"`
	CreatedAt   string     `json:"created_at"`
	Source      *SourceDTO `json:"source,omitempty"`
	Disciplines []string   `json:"disciplines,omitempty"`
	Milestone   bool       `json:"milestone"`
}

// SourceDTO represents the originating record (meeting transcript, email,
// or document) an entry was extracted from.
type SourceDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	Kind       string `json:"kind"`
	OccurredAt string `json:"occurred_at,omitempty"`
}

// ListResponseDTO wraps the entry collection returned by
// GET /api/v1/projects/{id}/entries.
type ListResponseDTO struct {
	Entries []EntryDTO `json:"entries"`
}
