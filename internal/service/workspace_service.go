package service

import (
	"context"
	"errors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/repository"
)

// WorkspaceService сохраняет воркспейсы, пришедшие от чат-API, и отдаёт их список.
type WorkspaceService struct {
	repo WorkspaceRepository
	tx   TransactionManager
}

// NewWorkspaceService создаёт новый сервис воркспейсов.
func NewWorkspaceService(repo WorkspaceRepository, tx TransactionManager) *WorkspaceService {
	return &WorkspaceService{repo: repo, tx: tx}
}

// SyncWorkspace сохраняет воркспейс вместе с составом одной транзакцией.
func (s *WorkspaceService) SyncWorkspace(ctx context.Context, accountID string, ws model.Workspace) (model.Workspace, error) {
	if accountID == "" {
		return model.Workspace{}, ErrBadRequest("account_id is required")
	}
	if ws.ID == "" {
		return model.Workspace{}, ErrBadRequest("workspace.id is required")
	}
	if ws.SelfID == "" {
		return model.Workspace{}, ErrBadRequest("workspace.self_id is required")
	}
	if n := countMember(ws.Members, ws.SelfID); n != 1 {
		return model.Workspace{}, ErrBadRequest("workspace.self_id must appear exactly once in workspace.members")
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpsertWorkspace(ctx, accountID, ws)
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidWorkspace) {
			return model.Workspace{}, ErrBadRequest("invalid workspace")
		}
		return model.Workspace{}, ErrInternal("failed to sync workspace", err)
	}
	return ws, nil
}

// ListWorkspaces возвращает воркспейсы аккаунта.
func (s *WorkspaceService) ListWorkspaces(ctx context.Context, accountID string) ([]model.WorkspaceSummary, error) {
	if accountID == "" {
		return nil, ErrBadRequest("account_id is required")
	}
	list, err := s.repo.ListWorkspaces(ctx, accountID)
	if err != nil {
		return nil, ErrInternal("failed to list workspaces", err)
	}
	return list, nil
}

func countMember(members []model.Member, id string) int {
	n := 0
	for _, m := range members {
		if m.ID == id {
			n++
		}
	}
	return n
}
