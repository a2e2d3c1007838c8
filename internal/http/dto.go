// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "dashboard-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type sectionsResponse struct {
	Sections []model.CatalogEntry `json:"sections"`
}

type panelDTO struct {
	model.Panel
	Widget string `json:"widget"`
}

// dashboardResponse подменяет panels на панели с именем виджета.
type dashboardResponse struct {
	model.Dashboard
	Panels []panelDTO `json:"panels"`
}

type syncWorkspaceRequest struct {
	AccountID string          `json:"account_id"`
	Workspace model.Workspace `json:"workspace"`
}

type workspaceResponse struct {
	Workspace model.Workspace `json:"workspace"`
}

type workspaceListResponse struct {
	AccountID  string                   `json:"account_id"`
	Workspaces []model.WorkspaceSummary `json:"workspaces"`
}

type preferencesResponse struct {
	Preferences model.Preferences `json:"preferences"`
}

type setSectionsRequest struct {
	AccountID string   `json:"account_id"`
	Sections  []string `json:"sections"`
}

type setSectionsResponse struct {
	AccountID string   `json:"account_id"`
	Sections  []string `json:"sections"`
}

type selectWorkspaceRequest struct {
	AccountID   string `json:"account_id"`
	WorkspaceID string `json:"workspace_id"`
}

type dismissRequest struct {
	AccountID      string `json:"account_id"`
	AnnouncementID string `json:"announcement_id"`
}
