package http

import (
	"encoding/json"
	"net/http"

	"dashboard-service/internal/service"
)

func (h *Handler) handlePreferencesGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "preferences_get"

	accountID := r.URL.Query().Get("account_id")
	if err := ValidateAccountID(accountID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	p, err := h.Prefs.GetPreferences(ctx, accountID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, preferencesResponse{Preferences: p})
}

func (h *Handler) handlePreferencesSections(w http.ResponseWriter, r *http.Request) {
	const handlerName = "preferences_sections"

	var req setSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSetSectionsRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	sections, err := h.Prefs.SetVisibleSections(ctx, req.AccountID, req.Sections)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, setSectionsResponse{AccountID: req.AccountID, Sections: sections})
}

func (h *Handler) handlePreferencesWorkspace(w http.ResponseWriter, r *http.Request) {
	const handlerName = "preferences_workspace"

	var req selectWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSelectWorkspaceRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Prefs.SelectWorkspace(ctx, req.AccountID, req.WorkspaceID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAnnouncementDismiss(w http.ResponseWriter, r *http.Request) {
	const handlerName = "announcement_dismiss"

	var req dismissRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateDismissRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Prefs.DismissAnnouncement(ctx, req.AccountID, req.AnnouncementID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
