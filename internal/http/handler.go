package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/service"
)

// DashboardService — контракт сервиса главного экрана для HTTP-слоя.
type DashboardService interface {
	Render(ctx context.Context, accountID, path string) (model.Dashboard, error)
	Catalog() []model.CatalogEntry
}

// PreferenceService — контракт сервиса настроек для HTTP-слоя.
type PreferenceService interface {
	GetPreferences(ctx context.Context, accountID string) (model.Preferences, error)
	SetVisibleSections(ctx context.Context, accountID string, sections []string) ([]string, error)
	SelectWorkspace(ctx context.Context, accountID, workspaceID string) error
	DismissAnnouncement(ctx context.Context, accountID, announcementID string) error
}

// WorkspaceService — контракт сервиса воркспейсов для HTTP-слоя.
type WorkspaceService interface {
	SyncWorkspace(ctx context.Context, accountID string, ws model.Workspace) (model.Workspace, error)
	ListWorkspaces(ctx context.Context, accountID string) ([]model.WorkspaceSummary, error)
}

type Handler struct {
	Dashboard      DashboardService
	Prefs          PreferenceService
	Workspaces     WorkspaceService
	Log            *slog.Logger
	AllowedOrigins []string
}

func NewHandler(dash DashboardService, prefs PreferenceService, workspaces WorkspaceService, log *slog.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		Dashboard:      dash,
		Prefs:          prefs,
		Workspaces:     workspaces,
		Log:            log,
		AllowedOrigins: allowedOrigins,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/sections", h.handleSections)
	r.Get("/dashboard", h.handleDashboard)

	r.Route("/workspace", func(r chi.Router) {
		r.Post("/sync", h.handleWorkspaceSync)
		r.Get("/list", h.handleWorkspaceList)
	})

	r.Route("/preferences", func(r chi.Router) {
		r.Get("/get", h.handlePreferencesGet)
		r.Post("/sections", h.handlePreferencesSections)
		r.Post("/workspace", h.handlePreferencesWorkspace)
	})

	r.Post("/announcements/dismiss", h.handleAnnouncementDismiss)

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelError
	if appErr.Status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
