package service

import (
	"context"

	"dashboard-service/internal/model"
)

// WorkspaceRepository описывает хранилище воркспейсов (session store).
type WorkspaceRepository interface {
	UpsertWorkspace(ctx context.Context, accountID string, ws model.Workspace) error
	GetWorkspace(ctx context.Context, accountID, workspaceID string) (model.Workspace, error)
	ListWorkspaces(ctx context.Context, accountID string) ([]model.WorkspaceSummary, error)
}

// PreferenceRepository описывает хранилище пользовательских настроек (preference store).
type PreferenceRepository interface {
	GetPreferences(ctx context.Context, accountID string) (model.Preferences, error)
	SetVisibleSections(ctx context.Context, accountID string, sections []string) error
	SetSelectedWorkspace(ctx context.Context, accountID, workspaceID string) error
	DismissAnnouncement(ctx context.Context, accountID, announcementID string) error
}

// TransactionManager выполняет функцию внутри транзакции.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
