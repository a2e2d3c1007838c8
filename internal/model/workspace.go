package model

// AvatarSize — метка размера аватара участника.
type AvatarSize string

// IconSize — метка размера иконки организации. Словарь не пересекается с AvatarSize.
type IconSize string

// AvatarSizes — порядок предпочтения аватаров участника, от крупного к мелкому.
var AvatarSizes = []AvatarSize{"512", "192", "72", "48", "32", "24"}

// IconSizes — порядок предпочтения иконок организации.
var IconSizes = []IconSize{"original", "230", "132", "102", "88", "68", "44", "34"}

// Profile содержит необязательные поля профиля участника.
type Profile struct {
	RealNameNormalized string                `json:"real_name_normalized,omitempty"`
	Email              string                `json:"email,omitempty"`
	Title              string                `json:"title,omitempty"`
	Avatars            map[AvatarSize]string `json:"avatars,omitempty"`
}

// Member описывает участника воркспейса.
type Member struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	RealName string  `json:"real_name,omitempty"`
	Profile  Profile `json:"profile"`
}

// Counts — три независимых счётчика организации.
type Counts struct {
	Channels int `json:"channels"`
	Groups   int `json:"groups"`
	Users    int `json:"users"`
}

// Organization описывает организацию (команду), к которой относится воркспейс.
type Organization struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	EmailDomain string              `json:"email_domain,omitempty"`
	Icons       map[IconSize]string `json:"icons,omitempty"`
	Counts      Counts              `json:"counts"`
}

// Workspace — подключённый воркспейс с его составом и идентификатором текущего пользователя в нём.
type Workspace struct {
	ID           string       `json:"id"`
	Organization Organization `json:"organization"`
	Members      []Member     `json:"members"`
	SelfID       string       `json:"self_id"`
}

// WorkspaceSummary — короткое представление воркспейса для переключателя команд.
type WorkspaceSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
