// Package phase translates the downstream records API's "phase"
// representation into domain timeline stages.
package phase

// PhaseDTO represents a configured project phase as returned by the
// downstream records API. StartsOn and EndsOn are YYYY-MM-DD dates.
type PhaseDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsOn string `json:"starts_on"`
	EndsOn   string `json:"ends_on"`
	Order    int    `json:"order"`
}

// ListResponseDTO wraps the phase collection returned by
// GET /api/v1/projects/{id}/phases.
type ListResponseDTO struct {
	Phases []PhaseDTO `json:"phases"`
}
