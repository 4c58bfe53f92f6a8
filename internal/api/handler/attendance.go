package handler

import (
	"encoding/json"
	"net/http"

	"github.com/procomhq/attendance-portal/internal/api/apierr"
	"github.com/procomhq/attendance-portal/internal/api/request"
	"github.com/procomhq/attendance-portal/internal/api/response"
	"github.com/procomhq/attendance-portal/internal/model"
	"github.com/procomhq/attendance-portal/internal/services/attendance"
)

// AttendanceHandler handles roster and attendance endpoints
type AttendanceHandler struct {
	controller *attendance.Controller
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(controller *attendance.Controller) *AttendanceHandler {
	return &AttendanceHandler{controller: controller}
}

// List handles GET /participants
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.controller.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantsFromModel(participants))
}

// Mark handles POST /mark-attendance
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIdentity(w, r)
	if !ok {
		return
	}

	if err := h.controller.Mark(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true})
}

// Unmark handles POST /remove-attendance
func (h *AttendanceHandler) Unmark(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIdentity(w, r)
	if !ok {
		return
	}

	if err := h.controller.Unmark(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true})
}

// PurgeLogRow handles POST /purge-log-entry
func (h *AttendanceHandler) PurgeLogRow(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIdentity(w, r)
	if !ok {
		return
	}

	if err := h.controller.PurgeLogRow(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true})
}

// Export handles GET /export
func (h *AttendanceHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.controller.Export(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.File(w, "Attendance.xlsx", data)
}

// TestSheets handles GET /test-sheets
func (h *AttendanceHandler) TestSheets(w http.ResponseWriter, r *http.Request) {
	headers, err := h.controller.Diagnostics(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Diagnostics{
		Success: true,
		Headers: headers,
		Auth:    "Successfully authenticated",
	})
}

// decodeIdentity parses and validates the identity triple from the body.
// On failure it writes the error response and returns ok=false.
func decodeIdentity(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	var req request.IdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return model.Identity{}, false
	}

	id := model.Identity{
		Competition: req.Competition,
		Leader:      req.Leader,
		Team:        req.Team,
	}
	if !id.IsComplete() {
		apierr.WriteError(w, apierr.NewInvalidRequestError("competition, leader and team are required"))
		return model.Identity{}, false
	}

	return id, true
}
