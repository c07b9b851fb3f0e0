package handlers

import (
	"net/http"

	"github.com/buildsight/timeline-service/internal/adapters/http/dto"
	"github.com/buildsight/timeline-service/internal/ports"
)

// TimelineHandler handles HTTP requests for the decision log and milestone
// timeline views.
type TimelineHandler struct {
	service ports.TimelineService
}

// NewTimelineHandler creates a new TimelineHandler with the given service port.
func NewTimelineHandler(service ports.TimelineService) *TimelineHandler {
	return &TimelineHandler{service: service}
}

// LogView handles GET /api/v1/projects/{projectId}/log.
func (h *TimelineHandler) LogView(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	query := dto.ParseLogQuery(r.URL.Query())

	groups, err := h.service.LogView(r.Context(), id, query.Mode, query.Filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogViewResponse(groups))
}

// MilestoneView handles GET /api/v1/projects/{projectId}/timeline.
func (h *TimelineHandler) MilestoneView(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.service.MilestoneView(r.Context(), id, r.URL.Query().Get("today"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMilestoneViewResponse(view))
}

// PortfolioLogViews handles GET /api/v1/portfolio/log.
func (h *TimelineHandler) PortfolioLogViews(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PortfolioLogViews(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPortfolioResponse(result))
}
