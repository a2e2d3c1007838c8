package dashboard

import (
	"errors"
	"fmt"

	"dashboard-service/internal/model"
)

var (
	// ErrSelfNotInRoster возвращается, если в составе воркспейса нет текущего пользователя.
	ErrSelfNotInRoster = errors.New("self member not found in workspace roster")

	// ErrAmbiguousSelf возвращается, если текущий пользователь встречается в составе больше одного раза.
	ErrAmbiguousSelf = errors.New("self member appears more than once in workspace roster")
)

// FirstImage перебирает размеры в заданном порядке и возвращает первый непустой URL.
func FirstImage[S ~string](order []S, variants map[S]string) (string, bool) {
	for _, size := range order {
		if url := variants[size]; url != "" {
			return url, true
		}
	}
	return "", false
}

// ResolveDisplayName выбирает первое непустое имя: нормализованное, полное, логин.
func ResolveDisplayName(normalized, realName, name string) string {
	switch {
	case normalized != "":
		return normalized
	case realName != "":
		return realName
	default:
		return name
	}
}

// TotalUsers — простая сумма трёх счётчиков, без дедупликации.
func TotalUsers(c model.Counts) int {
	return c.Channels + c.Groups + c.Users
}

// Enrich собирает payload для виджета поддержки из данных выбранного воркспейса.
// Результат не ссылается на ws. Текущий пользователь должен встречаться в составе
// ровно один раз, иначе возвращается ErrSelfNotInRoster или ErrAmbiguousSelf.
func Enrich(appID string, ws model.Workspace) (model.SupportContact, error) {
	self, matches := findMember(ws.Members, ws.SelfID)
	switch {
	case matches == 0:
		return model.SupportContact{}, fmt.Errorf("workspace %s, member %q: %w", ws.ID, ws.SelfID, ErrSelfNotInRoster)
	case matches > 1:
		return model.SupportContact{}, fmt.Errorf("workspace %s, member %q (%d entries): %w", ws.ID, ws.SelfID, matches, ErrAmbiguousSelf)
	}

	org := ws.Organization
	return model.SupportContact{
		AppID:     appID,
		Name:      ResolveDisplayName(self.Profile.RealNameNormalized, self.RealName, self.Name),
		Email:     self.Profile.Email,
		UserID:    self.ID,
		Title:     self.Profile.Title,
		Username:  self.Name,
		UserImage: optional(FirstImage(model.AvatarSizes, self.Profile.Avatars)),
		Company: model.Company{
			ID:              org.ID,
			Name:            org.Name,
			TeamEmailDomain: org.EmailDomain,
			TeamImage:       optional(FirstImage(model.IconSizes, org.Icons)),
			TotalUsers:      TotalUsers(org.Counts),
		},
	}, nil
}

// findMember возвращает первого участника с данным id и число совпадений.
func findMember(members []model.Member, id string) (model.Member, int) {
	var found model.Member
	matches := 0
	for _, m := range members {
		if m.ID != id {
			continue
		}
		if matches == 0 {
			found = m
		}
		matches++
	}
	return found, matches
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}
