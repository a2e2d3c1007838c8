package repository

import "errors"

var (
	// ErrWorkspaceNotFound возвращается, если воркспейс не найден у аккаунта.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrInvalidWorkspace возвращается при попытке сохранить воркспейс без идентификатора.
	ErrInvalidWorkspace = errors.New("invalid workspace")
)
