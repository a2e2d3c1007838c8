package service

import (
	"context"
	"errors"

	"dashboard-service/internal/dashboard"
	"dashboard-service/internal/model"
	"dashboard-service/internal/repository"
)

// PreferenceService управляет настройками аккаунта: включёнными секциями,
// выбранным воркспейсом и закрытыми анонсами.
type PreferenceService struct {
	prefs      PreferenceRepository
	workspaces WorkspaceRepository
	catalog    model.Catalog
}

// NewPreferenceService создаёт новый сервис настроек.
func NewPreferenceService(prefs PreferenceRepository, workspaces WorkspaceRepository, catalog model.Catalog) *PreferenceService {
	return &PreferenceService{prefs: prefs, workspaces: workspaces, catalog: catalog}
}

// GetPreferences возвращает настройки аккаунта.
func (s *PreferenceService) GetPreferences(ctx context.Context, accountID string) (model.Preferences, error) {
	if accountID == "" {
		return model.Preferences{}, ErrBadRequest("account_id is required")
	}
	p, err := s.prefs.GetPreferences(ctx, accountID)
	if err != nil {
		return model.Preferences{}, ErrInternal("failed to load preferences", err)
	}
	return p, nil
}

// SetVisibleSections проверяет идентификаторы по каталогу и сохраняет их в порядке каталога.
// Неизвестный идентификатор — ошибка конфигурации, ничего не сохраняется.
func (s *PreferenceService) SetVisibleSections(ctx context.Context, accountID string, sections []string) ([]string, error) {
	if accountID == "" {
		return nil, ErrBadRequest("account_id is required")
	}
	if unknown := dashboard.UnknownSections(s.catalog, sections); len(unknown) > 0 {
		return nil, ErrConfiguration(unknown)
	}

	canonical := dashboard.Canonicalize(s.catalog, sections)
	if err := s.prefs.SetVisibleSections(ctx, accountID, canonical); err != nil {
		return nil, ErrInternal("failed to save sections", err)
	}
	return canonical, nil
}

// SelectWorkspace делает воркспейс текущим. Воркспейс должен существовать у аккаунта.
func (s *PreferenceService) SelectWorkspace(ctx context.Context, accountID, workspaceID string) error {
	if accountID == "" {
		return ErrBadRequest("account_id is required")
	}
	if workspaceID == "" {
		return ErrBadRequest("workspace_id is required")
	}

	if _, err := s.workspaces.GetWorkspace(ctx, accountID, workspaceID); err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return ErrNotFound("workspace not found")
		}
		return ErrInternal("failed to load workspace", err)
	}

	if err := s.prefs.SetSelectedWorkspace(ctx, accountID, workspaceID); err != nil {
		return ErrInternal("failed to select workspace", err)
	}
	return nil
}

// DismissAnnouncement закрывает анонс навсегда. Повторное закрытие не ошибка.
func (s *PreferenceService) DismissAnnouncement(ctx context.Context, accountID, announcementID string) error {
	if accountID == "" {
		return ErrBadRequest("account_id is required")
	}
	if announcementID == "" {
		return ErrBadRequest("announcement_id is required")
	}
	if err := s.prefs.DismissAnnouncement(ctx, accountID, announcementID); err != nil {
		return ErrInternal("failed to dismiss announcement", err)
	}
	return nil
}
