package http

import (
	"fmt"
	"regexp"

	"dashboard-service/internal/service"
)

// Регулярки для проверки идентификаторов аккаунта, воркспейса и анонса
var (
	reAccountID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reWorkspaceID    = regexp.MustCompile(`^[A-Za-z0-9]{1,32}$`)
	reAnnouncementID = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)
)

// ValidateAccountID Валидация account_id (query или тело запроса)
func ValidateAccountID(accountID string) error {
	if accountID == "" {
		return service.ErrBadRequest("account_id is required")
	}
	if !reAccountID.MatchString(accountID) {
		return service.ErrBadRequest("account_id must match pattern [A-Za-z0-9_-]{1,64}")
	}
	return nil
}

// Workspaces

// ValidateSyncWorkspaceRequest /workspace/sync — тело запроса
func ValidateSyncWorkspaceRequest(req syncWorkspaceRequest) error {
	if err := ValidateAccountID(req.AccountID); err != nil {
		return err
	}
	ws := req.Workspace
	if !reWorkspaceID.MatchString(ws.ID) {
		return service.ErrBadRequest("workspace.id must be alphanumeric, e.g. T024BE7LD")
	}
	if ws.Organization.Name == "" {
		return service.ErrBadRequest("workspace.organization.name is required")
	}
	if ws.SelfID == "" {
		return service.ErrBadRequest("workspace.self_id is required")
	}

	seen := make(map[string]struct{}, len(ws.Members))
	for i, m := range ws.Members {
		if m.ID == "" {
			return service.ErrBadRequest(fmt.Sprintf("workspace.members[%d].id is required", i))
		}
		if m.Name == "" {
			return service.ErrBadRequest(fmt.Sprintf("workspace.members[%d].name is required", i))
		}
		if _, dup := seen[m.ID]; dup {
			return service.ErrBadRequest(fmt.Sprintf("workspace.members[%d].id is duplicated", i))
		}
		seen[m.ID] = struct{}{}
	}
	if _, ok := seen[ws.SelfID]; !ok {
		return service.ErrBadRequest("workspace.self_id must be one of workspace.members")
	}

	c := ws.Organization.Counts
	if c.Channels < 0 || c.Groups < 0 || c.Users < 0 {
		return service.ErrBadRequest("workspace.organization.counts must not be negative")
	}
	return nil
}

// Preferences

// ValidateSetSectionsRequest /preferences/sections — тело запроса.
// Проверка по каталогу делается в сервисе.
func ValidateSetSectionsRequest(req setSectionsRequest) error {
	if err := ValidateAccountID(req.AccountID); err != nil {
		return err
	}
	if req.Sections == nil {
		return service.ErrBadRequest("sections is required (use [] to hide everything)")
	}
	return nil
}

// ValidateSelectWorkspaceRequest /preferences/workspace — тело запроса
func ValidateSelectWorkspaceRequest(req selectWorkspaceRequest) error {
	if err := ValidateAccountID(req.AccountID); err != nil {
		return err
	}
	if !reWorkspaceID.MatchString(req.WorkspaceID) {
		return service.ErrBadRequest("workspace_id must be alphanumeric, e.g. T024BE7LD")
	}
	return nil
}

// ValidateDismissRequest /announcements/dismiss — тело запроса
func ValidateDismissRequest(req dismissRequest) error {
	if err := ValidateAccountID(req.AccountID); err != nil {
		return err
	}
	if !reAnnouncementID.MatchString(req.AnnouncementID) {
		return service.ErrBadRequest("announcement_id must match pattern [a-z0-9-], e.g. v3-welcome")
	}
	return nil
}
