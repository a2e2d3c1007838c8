package repository

import (
	"context"
	"errors"
	"fmt"

	"dashboard-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// WorkspaceRepo хранит воркспейсы аккаунта и их состав в PostgreSQL.
type WorkspaceRepo struct {
	db *Postgres
}

// NewWorkspaceRepo создаёт новый экземпляр WorkspaceRepo.
func NewWorkspaceRepo(db *Postgres) *WorkspaceRepo {
	return &WorkspaceRepo{db: db}
}

// UpsertWorkspace сохраняет воркспейс и полностью заменяет его состав.
// Рассчитан на вызов внутри TransactionManager.RunInTransaction.
func (r *WorkspaceRepo) UpsertWorkspace(ctx context.Context, accountID string, ws model.Workspace) error {
	if ws.ID == "" {
		return ErrInvalidWorkspace
	}
	q := r.db.GetQueryExecutor(ctx)

	org := ws.Organization
	_, err := q.Exec(ctx, `
INSERT INTO workspaces (account_id, id, org_id, name, email_domain, icons,
                        channel_count, group_count, user_count, self_member_id, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
ON CONFLICT (account_id, id) DO UPDATE
SET org_id         = EXCLUDED.org_id,
    name           = EXCLUDED.name,
    email_domain   = EXCLUDED.email_domain,
    icons          = EXCLUDED.icons,
    channel_count  = EXCLUDED.channel_count,
    group_count    = EXCLUDED.group_count,
    user_count     = EXCLUDED.user_count,
    self_member_id = EXCLUDED.self_member_id,
    updated_at     = now()
`, accountID, ws.ID, org.ID, org.Name, org.EmailDomain, iconsOrEmpty(org.Icons),
		org.Counts.Channels, org.Counts.Groups, org.Counts.Users, ws.SelfID)
	if err != nil {
		return fmt.Errorf("upsert workspace %s: %w", ws.ID, err)
	}

	if _, err := q.Exec(ctx, `DELETE FROM workspace_members WHERE account_id = $1 AND workspace_id = $2`, accountID, ws.ID); err != nil {
		return fmt.Errorf("clear members: %w", err)
	}

	if len(ws.Members) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range ws.Members {
		batch.Queue(`
INSERT INTO workspace_members (account_id, workspace_id, member_id, name, real_name,
                               real_name_normalized, email, title, avatars)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, accountID, ws.ID, m.ID, m.Name, m.RealName, m.Profile.RealNameNormalized,
			m.Profile.Email, m.Profile.Title, avatarsOrEmpty(m.Profile.Avatars))
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()
	for _, m := range ws.Members {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert member %s: %w", m.ID, err)
		}
	}
	return nil
}

// GetWorkspace возвращает воркспейс вместе с составом. Если его нет, возвращает ErrWorkspaceNotFound.
func (r *WorkspaceRepo) GetWorkspace(ctx context.Context, accountID, workspaceID string) (model.Workspace, error) {
	q := r.db.GetQueryExecutor(ctx)

	ws := model.Workspace{ID: workspaceID}
	org := &ws.Organization
	err := q.QueryRow(ctx, `
SELECT org_id, name, email_domain, icons, channel_count, group_count, user_count, self_member_id
FROM workspaces
WHERE account_id = $1 AND id = $2
`, accountID, workspaceID).Scan(&org.ID, &org.Name, &org.EmailDomain, &org.Icons,
		&org.Counts.Channels, &org.Counts.Groups, &org.Counts.Users, &ws.SelfID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Workspace{}, ErrWorkspaceNotFound
		}
		return model.Workspace{}, fmt.Errorf("get workspace: %w", err)
	}

	rows, err := q.Query(ctx, `
SELECT member_id, name, real_name, real_name_normalized, email, title, avatars
FROM workspace_members
WHERE account_id = $1 AND workspace_id = $2
ORDER BY member_id
`, accountID, workspaceID)
	if err != nil {
		return model.Workspace{}, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	ws.Members = make([]model.Member, 0)
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.RealName, &m.Profile.RealNameNormalized,
			&m.Profile.Email, &m.Profile.Title, &m.Profile.Avatars); err != nil {
			return model.Workspace{}, fmt.Errorf("scan member: %w", err)
		}
		ws.Members = append(ws.Members, m)
	}
	if err := rows.Err(); err != nil {
		return model.Workspace{}, fmt.Errorf("rows error: %w", err)
	}

	return ws, nil
}

// ListWorkspaces возвращает все воркспейсы аккаунта, отсортированные по имени.
func (r *WorkspaceRepo) ListWorkspaces(ctx context.Context, accountID string) ([]model.WorkspaceSummary, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT id, name
FROM workspaces
WHERE account_id = $1
ORDER BY name, id
`, accountID)
	if err != nil {
		return nil, fmt.Errorf("query workspaces: %w", err)
	}
	defer rows.Close()

	out := make([]model.WorkspaceSummary, 0)
	for rows.Next() {
		var s model.WorkspaceSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

// в JSONB-колонках NOT NULL, поэтому nil-карты пишем как пустой объект
func iconsOrEmpty(m map[model.IconSize]string) map[model.IconSize]string {
	if m == nil {
		return map[model.IconSize]string{}
	}
	return m
}

func avatarsOrEmpty(m map[model.AvatarSize]string) map[model.AvatarSize]string {
	if m == nil {
		return map[model.AvatarSize]string{}
	}
	return m
}
