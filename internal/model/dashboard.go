package model

// DefaultSupportAppID — идентификатор приложения в виджете поддержки.
const DefaultSupportAppID = "clicky-support"

// SettingsPath — путь экрана настроек, на который ведёт подсказка при пустом списке секций.
const SettingsPath = "/settings"

// Company — данные организации в payload'е виджета поддержки.
type Company struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TeamEmailDomain string  `json:"team_email_domain,omitempty"`
	TeamImage       *string `json:"team_image"`
	TotalUsers      int     `json:"total_users"`
}

// SupportContact — плоский payload для виджета поддержки. Пересчитывается на каждый рендер.
type SupportContact struct {
	AppID     string  `json:"app_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	UserID    string  `json:"user_id"`
	Title     string  `json:"title,omitempty"`
	Username  string  `json:"username"`
	UserImage *string `json:"user_image"`
	Company   Company `json:"company"`
}

// Preferences — настройки аккаунта: выбранный воркспейс, включённые секции и скрытые анонсы.
type Preferences struct {
	AccountID              string   `json:"account_id"`
	SelectedWorkspaceID    string   `json:"selected_workspace_id,omitempty"`
	VisibleSections        []string `json:"visible_sections"`
	DismissedAnnouncements []string `json:"dismissed_announcements"`
}

// Announcement — баннер с объявлением, который можно закрыть один раз и навсегда.
type Announcement struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// WelcomeAnnouncement показывается всем, кто ещё не закрыл его.
var WelcomeAnnouncement = Announcement{
	ID:    "v3-welcome",
	Title: "The new and improved #Clicky!",
	Paragraphs: []string{
		"Hey there!",
		"This version of #Clicky has been completely rebuilt from the ground up, and brings with it a load of new great features.",
		"Better notifications, support for themeing, a dark mode, as well as the long-awaited (and much requested) multi-team support, to name a few!",
		"I've done my best to make sure this is the most stable and reliable version of #Clicky yet. If, however, you do spot any bugs or weird behaviour, or if you just want to request a feature, then please do let me know.",
		"Happy #Clicking!",
		"Josh",
	},
}

// Panel — одна отрисовываемая секция, привязанная к воркспейсу.
type Panel struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Kind        SectionKind `json:"kind"`
	WorkspaceID string      `json:"workspace_id"`
}

// Dashboard — view-model главного экрана.
type Dashboard struct {
	Path                 string             `json:"path"`
	Workspaces           []WorkspaceSummary `json:"workspaces"`
	SelectedWorkspaceID  string             `json:"selected_workspace_id,omitempty"`
	Panels               []Panel            `json:"panels"`
	HasVisibleSections   bool               `json:"has_visible_sections"`
	HasNoVisibleSections bool               `json:"has_no_visible_sections"`
	SettingsPath         string             `json:"settings_path"`
	Announcement         *Announcement      `json:"announcement,omitempty"`
	Support              *SupportContact    `json:"support,omitempty"`
}
