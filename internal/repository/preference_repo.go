package repository

import (
	"context"
	"errors"
	"fmt"

	"dashboard-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// PreferenceRepo хранит настройки аккаунта и закрытые анонсы.
type PreferenceRepo struct {
	db *Postgres
}

// NewPreferenceRepo создаёт новый экземпляр PreferenceRepo.
func NewPreferenceRepo(db *Postgres) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetPreferences возвращает настройки аккаунта. Для нового аккаунта возвращаются пустые значения.
func (r *PreferenceRepo) GetPreferences(ctx context.Context, accountID string) (model.Preferences, error) {
	q := r.db.GetQueryExecutor(ctx)

	p := model.Preferences{
		AccountID:              accountID,
		VisibleSections:        make([]string, 0),
		DismissedAnnouncements: make([]string, 0),
	}

	var selected *string
	var sections []string
	err := q.QueryRow(ctx, `
SELECT selected_workspace_id, visible_sections
FROM preferences
WHERE account_id = $1
`, accountID).Scan(&selected, &sections)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return model.Preferences{}, fmt.Errorf("get preferences: %w", err)
	default:
		if selected != nil {
			p.SelectedWorkspaceID = *selected
		}
		if sections != nil {
			p.VisibleSections = sections
		}
	}

	rows, err := q.Query(ctx, `
SELECT announcement_id
FROM dismissed_announcements
WHERE account_id = $1
ORDER BY dismissed_at, announcement_id
`, accountID)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("query dismissed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return model.Preferences{}, fmt.Errorf("scan dismissed: %w", err)
		}
		p.DismissedAnnouncements = append(p.DismissedAnnouncements, id)
	}
	if err := rows.Err(); err != nil {
		return model.Preferences{}, fmt.Errorf("rows error: %w", err)
	}

	return p, nil
}

// SetVisibleSections сохраняет список включённых секций как есть. Валидация — на стороне сервиса.
func (r *PreferenceRepo) SetVisibleSections(ctx context.Context, accountID string, sections []string) error {
	if sections == nil {
		sections = []string{}
	}
	q := r.db.GetQueryExecutor(ctx)
	_, err := q.Exec(ctx, `
INSERT INTO preferences (account_id, visible_sections)
VALUES ($1, $2)
ON CONFLICT (account_id) DO UPDATE
SET visible_sections = EXCLUDED.visible_sections
`, accountID, sections)
	if err != nil {
		return fmt.Errorf("set visible sections: %w", err)
	}
	return nil
}

// SetSelectedWorkspace запоминает выбранный воркспейс.
func (r *PreferenceRepo) SetSelectedWorkspace(ctx context.Context, accountID, workspaceID string) error {
	q := r.db.GetQueryExecutor(ctx)
	_, err := q.Exec(ctx, `
INSERT INTO preferences (account_id, selected_workspace_id)
VALUES ($1, $2)
ON CONFLICT (account_id) DO UPDATE
SET selected_workspace_id = EXCLUDED.selected_workspace_id
`, accountID, workspaceID)
	if err != nil {
		return fmt.Errorf("set selected workspace: %w", err)
	}
	return nil
}

// DismissAnnouncement помечает анонс закрытым. Повторный вызов ничего не меняет,
// удаления отметки не предусмотрено.
func (r *PreferenceRepo) DismissAnnouncement(ctx context.Context, accountID, announcementID string) error {
	q := r.db.GetQueryExecutor(ctx)
	_, err := q.Exec(ctx, `
INSERT INTO dismissed_announcements (account_id, announcement_id)
VALUES ($1, $2)
ON CONFLICT (account_id, announcement_id) DO NOTHING
`, accountID, announcementID)
	if err != nil {
		return fmt.Errorf("dismiss announcement: %w", err)
	}
	return nil
}
