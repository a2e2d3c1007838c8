package http

import (
	"encoding/json"
	"net/http"

	"dashboard-service/internal/service"
)

func (h *Handler) handleWorkspaceSync(w http.ResponseWriter, r *http.Request) {
	const handlerName = "workspace_sync"

	var req syncWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSyncWorkspaceRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	ws, err := h.Workspaces.SyncWorkspace(ctx, req.AccountID, req.Workspace)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, workspaceResponse{Workspace: ws})
}

func (h *Handler) handleWorkspaceList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "workspace_list"

	accountID := r.URL.Query().Get("account_id")
	if err := ValidateAccountID(accountID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	list, err := h.Workspaces.ListWorkspaces(ctx, accountID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, workspaceListResponse{AccountID: accountID, Workspaces: list})
}
