package dashboard

import "dashboard-service/internal/model"

// AnnouncementVisible возвращает true, пока анонс не закрыт пользователем.
func AnnouncementVisible(id string, dismissed []string) bool {
	for _, d := range dismissed {
		if d == id {
			return false
		}
	}
	return true
}

// GateAnnouncement возвращает копию анонса или nil, если он уже закрыт.
func GateAnnouncement(a model.Announcement, dismissed []string) *model.Announcement {
	if !AnnouncementVisible(a.ID, dismissed) {
		return nil
	}
	out := a
	out.Paragraphs = append([]string(nil), a.Paragraphs...)
	return &out
}
