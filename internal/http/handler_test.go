package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "dashboard-service/internal/http"
	"dashboard-service/internal/http/mocks"
	"dashboard-service/internal/model"
	"dashboard-service/internal/service"
)

type fixture struct {
	dash  *mocks.DashboardService
	prefs *mocks.PreferenceService
	ws    *mocks.WorkspaceService
	h     http.Handler
}

func newFixture() fixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	f := fixture{
		dash:  new(mocks.DashboardService),
		prefs: new(mocks.PreferenceService),
		ws:    new(mocks.WorkspaceService),
	}
	f.h = httpapi.NewHandler(f.dash, f.prefs, f.ws, logger, []string{"*"}).Router()
	return f
}

func (f fixture) assertExpectations(t *testing.T) {
	f.dash.AssertExpectations(t)
	f.prefs.AssertExpectations(t)
	f.ws.AssertExpectations(t)
}

func TestHandler_Health(t *testing.T) {
	f := newFixture()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	f.h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_Dashboard(t *testing.T) {
	image := "u512"
	rendered := model.Dashboard{
		Path:                "/home",
		SelectedWorkspaceID: "T1",
		Panels: []model.Panel{
			{ID: "channels", Title: "Channels", Kind: model.KindChannels, WorkspaceID: "T1"},
			{ID: "mpims", Title: "Group Messages", Kind: model.KindMPIMs, WorkspaceID: "T1"},
		},
		HasVisibleSections: true,
		SettingsPath:       model.SettingsPath,
		Support: &model.SupportContact{
			AppID:     "app-test",
			Name:      "Bob",
			UserID:    "U1",
			Username:  "bob123",
			UserImage: &image,
			Company:   model.Company{ID: "T1", Name: "Gophers", TotalUsers: 15},
		},
	}

	tests := []struct {
		name           string
		url            string
		mockBehavior   func(d *mocks.DashboardService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success",
			url:  "/dashboard?account_id=acc-1&path=/home",
			mockBehavior: func(d *mocks.DashboardService) {
				d.On("Render", mock.Anything, "acc-1", "/home").Return(rendered, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bad Request: missing account",
			url:            "/dashboard",
			mockBehavior:   func(d *mocks.DashboardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name: "Precondition: self not in roster",
			url:  "/dashboard?account_id=acc-1",
			mockBehavior: func(d *mocks.DashboardService) {
				d.On("Render", mock.Anything, "acc-1", "").
					Return(model.Dashboard{}, service.ErrPrecondition("current user is missing", errors.New("boom")))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "SELF_NOT_IN_ROSTER",
		},
		{
			name: "Internal: unknown section kind",
			url:  "/dashboard?account_id=acc-1",
			mockBehavior: func(d *mocks.DashboardService) {
				d.On("Render", mock.Anything, "acc-1", "").Return(model.Dashboard{
					Panels: []model.Panel{{ID: "x", Kind: model.SectionKind(99)}},
				}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.mockBehavior(f.dash)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			f.h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var body struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedCode, body.Error.Code)
			}
			f.assertExpectations(t)
		})
	}
}

func TestHandler_Dashboard_Body(t *testing.T) {
	f := newFixture()
	f.dash.On("Render", mock.Anything, "acc-1", "").Return(model.Dashboard{
		Panels: []model.Panel{
			{ID: "dms", Title: "Direct Messages", Kind: model.KindDMs, WorkspaceID: "T1"},
		},
		HasVisibleSections: true,
		SettingsPath:       model.SettingsPath,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?account_id=acc-1", nil)
	w := httptest.NewRecorder()
	f.h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Panels []struct {
			ID     string `json:"id"`
			Kind   string `json:"kind"`
			Widget string `json:"widget"`
		} `json:"panels"`
		HasVisibleSections   bool            `json:"has_visible_sections"`
		HasNoVisibleSections bool            `json:"has_no_visible_sections"`
		Support              json.RawMessage `json:"support"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Panels, 1)
	assert.Equal(t, "dms", body.Panels[0].ID)
	assert.Equal(t, "dm_list", body.Panels[0].Kind)
	assert.Equal(t, "DmList", body.Panels[0].Widget)
	assert.True(t, body.HasVisibleSections)
	assert.False(t, body.HasNoVisibleSections)
	assert.Nil(t, body.Support)
}

func TestHandler_Sections(t *testing.T) {
	f := newFixture()
	f.dash.On("Catalog").Return(model.DefaultCatalog.Entries())

	req := httptest.NewRequest(http.MethodGet, "/sections", nil)
	w := httptest.NewRecorder()
	f.h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Sections []struct {
			ID string `json:"id"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Sections, model.DefaultCatalog.Len())
	assert.Equal(t, "channels", body.Sections[0].ID)
	f.assertExpectations(t)
}

func TestHandler_PreferencesSections(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(p *mocks.PreferenceService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"account_id": "acc-1", "sections": ["dms", "channels"]}`,
			mockBehavior: func(p *mocks.PreferenceService) {
				p.On("SetVisibleSections", mock.Anything, "acc-1", []string{"dms", "channels"}).
					Return([]string{"channels", "dms"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bad Request: Invalid JSON",
			body:           `{"sections": "broken`,
			mockBehavior:   func(p *mocks.PreferenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: sections missing",
			body:           `{"account_id": "acc-1"}`,
			mockBehavior:   func(p *mocks.PreferenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: unknown section",
			body: `{"account_id": "acc-1", "sections": ["starred"]}`,
			mockBehavior: func(p *mocks.PreferenceService) {
				p.On("SetVisibleSections", mock.Anything, "acc-1", []string{"starred"}).
					Return(nil, service.ErrConfiguration([]string{"starred"}))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.mockBehavior(f.prefs)

			req := httptest.NewRequest(http.MethodPost, "/preferences/sections", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			f.h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			f.assertExpectations(t)
		})
	}
}

func TestHandler_PreferencesWorkspace(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(p *mocks.PreferenceService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"account_id": "acc-1", "workspace_id": "T1"}`,
			mockBehavior: func(p *mocks.PreferenceService) {
				p.On("SelectWorkspace", mock.Anything, "acc-1", "T1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Not Found",
			body: `{"account_id": "acc-1", "workspace_id": "T9"}`,
			mockBehavior: func(p *mocks.PreferenceService) {
				p.On("SelectWorkspace", mock.Anything, "acc-1", "T9").Return(service.ErrNotFound("workspace not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Bad Request: bad workspace id",
			body:           `{"account_id": "acc-1", "workspace_id": "T-1"}`,
			mockBehavior:   func(p *mocks.PreferenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.mockBehavior(f.prefs)

			req := httptest.NewRequest(http.MethodPost, "/preferences/workspace", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			f.h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			f.assertExpectations(t)
		})
	}
}

func TestHandler_AnnouncementDismiss(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(p *mocks.PreferenceService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"account_id": "acc-1", "announcement_id": "v3-welcome"}`,
			mockBehavior: func(p *mocks.PreferenceService) {
				p.On("DismissAnnouncement", mock.Anything, "acc-1", "v3-welcome").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Bad Request: empty announcement",
			body:           `{"account_id": "acc-1", "announcement_id": ""}`,
			mockBehavior:   func(p *mocks.PreferenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Internal Error",
			body: `{"account_id": "acc-1", "announcement_id": "v3-welcome"}`,
			mockBehavior: func(p *mocks.PreferenceService) {
				p.On("DismissAnnouncement", mock.Anything, "acc-1", "v3-welcome").
					Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.mockBehavior(f.prefs)

			req := httptest.NewRequest(http.MethodPost, "/announcements/dismiss", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			f.h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			f.assertExpectations(t)
		})
	}
}

func TestHandler_WorkspaceSync(t *testing.T) {
	valid := `{
		"account_id": "acc-1",
		"workspace": {
			"id": "T1",
			"self_id": "U1",
			"organization": {"id": "T1", "name": "Gophers", "counts": {"channels": 3, "groups": 2, "users": 10}},
			"members": [{"id": "U1", "name": "bob123", "profile": {"avatars": {"48": "u48"}}}]
		}
	}`

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(ws *mocks.WorkspaceService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: valid,
			mockBehavior: func(ws *mocks.WorkspaceService) {
				ws.On("SyncWorkspace", mock.Anything, "acc-1", mock.MatchedBy(func(w model.Workspace) bool {
					return w.ID == "T1" && len(w.Members) == 1 && w.Members[0].Profile.Avatars["48"] == "u48"
				})).Return(func(_ context.Context, _ string, w model.Workspace) model.Workspace { return w }, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Bad Request: duplicate member",
			body: `{"account_id": "acc-1", "workspace": {"id": "T1", "self_id": "U1",
				"organization": {"name": "Gophers"},
				"members": [{"id": "U1", "name": "a"}, {"id": "U1", "name": "b"}]}}`,
			mockBehavior:   func(ws *mocks.WorkspaceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: missing organization name",
			body:           `{"account_id": "acc-1", "workspace": {"id": "T1", "self_id": "U1"}}`,
			mockBehavior:   func(ws *mocks.WorkspaceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: self not among members",
			body: `{"account_id": "acc-1", "workspace": {"id": "T1", "self_id": "U404",
				"organization": {"id": "T1", "name": "Gophers"},
				"members": [{"id": "U1", "name": "alice"}]}}`,
			mockBehavior:   func(ws *mocks.WorkspaceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: empty roster",
			body: `{"account_id": "acc-1", "workspace": {"id": "T1", "self_id": "U1",
				"organization": {"id": "T1", "name": "Gophers"}, "members": []}}`,
			mockBehavior:   func(ws *mocks.WorkspaceService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.mockBehavior(f.ws)

			req := httptest.NewRequest(http.MethodPost, "/workspace/sync", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			f.h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			f.assertExpectations(t)
		})
	}
}

func TestHandler_WorkspaceList(t *testing.T) {
	f := newFixture()
	f.ws.On("ListWorkspaces", mock.Anything, "acc-1").
		Return([]model.WorkspaceSummary{{ID: "T1", Name: "Gophers"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workspace/list?account_id=acc-1", nil)
	w := httptest.NewRecorder()
	f.h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"account_id":"acc-1","workspaces":[{"id":"T1","name":"Gophers"}]}`, w.Body.String())
	f.assertExpectations(t)
}
