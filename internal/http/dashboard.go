package http

import (
	"fmt"
	"net/http"

	"dashboard-service/internal/model"
	"dashboard-service/internal/service"
)

// widgetFor выбирает виджет для вида секции. Новый SectionKind без ветки здесь — ошибка рендера.
func widgetFor(kind model.SectionKind) (string, error) {
	switch kind {
	case model.KindChannels:
		return "ChannelList", nil
	case model.KindDMs:
		return "DmList", nil
	case model.KindIMs:
		return "ImList", nil
	case model.KindMPIMs:
		return "MpimList", nil
	case model.KindPrivateChannels:
		return "PrivateChannelList", nil
	case model.KindPublicChannels:
		return "PublicChannelList", nil
	}
	return "", fmt.Errorf("no widget for section kind %s", kind)
}

func newDashboardResponse(d model.Dashboard) (dashboardResponse, error) {
	resp := dashboardResponse{
		Dashboard: d,
		Panels:    make([]panelDTO, 0, len(d.Panels)),
	}
	for _, p := range d.Panels {
		widget, err := widgetFor(p.Kind)
		if err != nil {
			return dashboardResponse{}, err
		}
		resp.Panels = append(resp.Panels, panelDTO{Panel: p, Widget: widget})
	}
	return resp, nil
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const handlerName = "dashboard_get"

	accountID := r.URL.Query().Get("account_id")
	if err := ValidateAccountID(accountID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	path := r.URL.Query().Get("path")

	ctx := r.Context()
	d, err := h.Dashboard.Render(ctx, accountID, path)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	resp, err := newDashboardResponse(d)
	if err != nil {
		h.writeError(w, handlerName, service.ErrInternal("failed to render panels", err))
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSections(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, sectionsResponse{Sections: h.Dashboard.Catalog()})
}
