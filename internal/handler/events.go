package handler

import (
	"encoding/json"
	"net/http"

	"recruitdash-cache-api/internal/invalidation"
	"recruitdash-cache-api/pkg/apierror"
	"recruitdash-cache-api/pkg/response"
)

// EventsHandler receives write-event notifications from the API-access
// layer after a mutating request succeeds, and routes each to its named
// invalidation hook.
type EventsHandler struct {
	invalidator *invalidation.Coordinator
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(invalidator *invalidation.Coordinator) *EventsHandler {
	return &EventsHandler{invalidator: invalidator}
}

// eventRequest is the body of an event notification.
type eventRequest struct {
	Action string `json:"action"` // created, updated, or deleted
	ID     string `json:"id,omitempty"`
}

func decodeEvent(r *http.Request) (*eventRequest, *apierror.Error) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apierror.BadRequest("invalid JSON body")
	}
	switch req.Action {
	case "created":
	case "updated", "deleted":
		if req.ID == "" {
			return nil, apierror.BadRequest("id is required for " + req.Action + " events")
		}
	default:
		return nil, apierror.BadRequest("action must be created, updated, or deleted")
	}
	return &req, nil
}

// JobEvent handles POST /api/v1/events/jobs
func (h *EventsHandler) JobEvent(w http.ResponseWriter, r *http.Request) {
	req, apiErr := decodeEvent(r)
	if apiErr != nil {
		response.Error(w, apiErr)
		return
	}

	switch req.Action {
	case "created":
		h.invalidator.OnJobCreated()
	case "updated":
		h.invalidator.OnJobUpdated(req.ID)
	case "deleted":
		h.invalidator.OnJobDeleted(req.ID)
	}

	response.OK(w, map[string]string{"status": "invalidated", "action": req.Action})
}

// ComparisonEvent handles POST /api/v1/events/comparisons
func (h *EventsHandler) ComparisonEvent(w http.ResponseWriter, r *http.Request) {
	req, apiErr := decodeEvent(r)
	if apiErr != nil {
		response.Error(w, apiErr)
		return
	}

	switch req.Action {
	case "created":
		h.invalidator.OnComparisonCreated()
	case "updated":
		h.invalidator.OnComparisonUpdated(req.ID)
	case "deleted":
		h.invalidator.OnComparisonDeleted(req.ID)
	}

	response.OK(w, map[string]string{"status": "invalidated", "action": req.Action})
}

// ResumeEvent handles POST /api/v1/events/resumes. Upload/parse flows use
// the coarse hook regardless of action.
func (h *EventsHandler) ResumeEvent(w http.ResponseWriter, r *http.Request) {
	h.invalidator.OnResumeProcessed()
	response.OK(w, map[string]string{"status": "invalidated"})
}
