package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/buildsight/timeline-service/internal/domain/item"
	"github.com/buildsight/timeline-service/internal/domain/stage"
)

var testTime = time.Date(2026, 2, 8, 10, 30, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validItem() item.Item {
	occurred := testTime
	return item.Item{
		ID:         "itm-1",
		ProjectID:  "p-1",
		Title:      "Approve facade material",
		Kind:       item.KindDecision,
		OccurredAt: &occurred,
		CreatedAt:  testTime,
		Source: &item.SourceRef{
			ID:    "tr-1",
			Title: "Facade review",
			Kind:  item.SourceMeeting,
		},
		Disciplines: []item.Discipline{"structural"},
	}
}

func validStage() stage.Stage {
	return stage.Stage{
		ID:   "s1",
		Name: "Design",
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
