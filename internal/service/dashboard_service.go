package service

import (
	"context"
	"errors"
	"log/slog"

	"dashboard-service/internal/dashboard"
	"dashboard-service/internal/model"
	"dashboard-service/internal/repository"
)

// DashboardService собирает view-model главного экрана из хранилищ и чистой логики пакета dashboard.
type DashboardService struct {
	workspaces WorkspaceRepository
	prefs      PreferenceRepository
	catalog    model.Catalog
	appID      string
	log        *slog.Logger
}

// NewDashboardService создаёт сервис главного экрана.
// appID — идентификатор приложения для виджета поддержки.
func NewDashboardService(
	workspaces WorkspaceRepository,
	prefs PreferenceRepository,
	catalog model.Catalog,
	appID string,
	log *slog.Logger,
) *DashboardService {
	return &DashboardService{
		workspaces: workspaces,
		prefs:      prefs,
		catalog:    catalog,
		appID:      appID,
		log:        log,
	}
}

// Catalog возвращает секции в каноническом порядке (для экрана настроек).
func (s *DashboardService) Catalog() []model.CatalogEntry {
	return s.catalog.Entries()
}

// Render строит экран для аккаунта. path передаётся в ответ без изменений.
// Если у выбранного воркспейса в составе нет текущего пользователя, возвращается
// ошибка SELF_NOT_IN_ROSTER, а не payload с пустыми полями.
func (s *DashboardService) Render(ctx context.Context, accountID, path string) (model.Dashboard, error) {
	if accountID == "" {
		return model.Dashboard{}, ErrBadRequest("account_id is required")
	}

	prefs, err := s.prefs.GetPreferences(ctx, accountID)
	if err != nil {
		return model.Dashboard{}, ErrInternal("failed to load preferences", err)
	}
	if unknown := dashboard.UnknownSections(s.catalog, prefs.VisibleSections); len(unknown) > 0 {
		s.log.Warn("unknown sections in stored preferences",
			slog.String("account_id", accountID),
			slog.Any("sections", unknown),
		)
	}

	workspaces, err := s.workspaces.ListWorkspaces(ctx, accountID)
	if err != nil {
		return model.Dashboard{}, ErrInternal("failed to list workspaces", err)
	}

	selected, err := s.selectedWorkspace(ctx, accountID, prefs.SelectedWorkspaceID)
	if err != nil {
		return model.Dashboard{}, err
	}

	resolved := dashboard.Resolve(s.catalog, prefs.VisibleSections)

	d := model.Dashboard{
		Path:                 path,
		Workspaces:           workspaces,
		Panels:               make([]model.Panel, 0, len(resolved)),
		HasVisibleSections:   dashboard.HasVisibleSections(len(workspaces), resolved),
		HasNoVisibleSections: dashboard.HasNoVisibleSections(prefs.VisibleSections),
		SettingsPath:         model.SettingsPath,
		Announcement:         dashboard.GateAnnouncement(model.WelcomeAnnouncement, prefs.DismissedAnnouncements),
	}
	if selected != nil {
		d.SelectedWorkspaceID = selected.ID
	}

	if d.HasVisibleSections {
		for _, r := range resolved {
			d.Panels = append(d.Panels, model.Panel{
				ID:          r.Entry.ID,
				Title:       r.Entry.Title,
				Kind:        r.Kind,
				WorkspaceID: d.SelectedWorkspaceID,
			})
		}
	}

	if selected != nil {
		contact, err := dashboard.Enrich(s.appID, *selected)
		if err != nil {
			switch {
			case errors.Is(err, dashboard.ErrSelfNotInRoster):
				return model.Dashboard{}, ErrPrecondition("current user is missing from the selected workspace", err)
			case errors.Is(err, dashboard.ErrAmbiguousSelf):
				return model.Dashboard{}, ErrPrecondition("current user appears more than once in the selected workspace", err)
			}
			return model.Dashboard{}, ErrInternal("failed to build support contact", err)
		}
		d.Support = &contact
	}

	return d, nil
}

// selectedWorkspace загружает выбранный воркспейс. Устаревший выбор трактуется как отсутствие выбора.
func (s *DashboardService) selectedWorkspace(ctx context.Context, accountID, workspaceID string) (*model.Workspace, error) {
	if workspaceID == "" {
		return nil, nil
	}
	ws, err := s.workspaces.GetWorkspace(ctx, accountID, workspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			s.log.Info("selected workspace no longer exists",
				slog.String("account_id", accountID),
				slog.String("workspace_id", workspaceID),
			)
			return nil, nil
		}
		return nil, ErrInternal("failed to load selected workspace", err)
	}
	return &ws, nil
}
