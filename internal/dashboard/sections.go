// Package dashboard содержит чистую логику главного экрана: выбор секций,
// сборку payload'а для виджета поддержки и показ анонсов. Функции пакета
// не делают I/O и не хранят состояние.
package dashboard

import "dashboard-service/internal/model"

// Resolve возвращает секции каталога, включённые пользователем.
// Порядок результата всегда совпадает с порядком каталога, а не с порядком enabled.
// Неизвестные идентификаторы молча отбрасываются.
func Resolve(catalog model.Catalog, enabled []string) []model.ResolvedSection {
	set := make(map[string]struct{}, len(enabled))
	for _, id := range enabled {
		set[id] = struct{}{}
	}

	out := make([]model.ResolvedSection, 0, len(set))
	for _, e := range catalog.Entries() {
		if _, ok := set[e.ID]; !ok {
			continue
		}
		out = append(out, model.ResolvedSection{Entry: e, Kind: e.Kind})
	}
	return out
}

// HasVisibleSections сообщает, нужно ли рисовать блок секций.
func HasVisibleSections(workspaceCount int, resolved []model.ResolvedSection) bool {
	return workspaceCount > 0 && len(resolved) > 0
}

// HasNoVisibleSections сообщает, нужно ли показать подсказку со ссылкой на настройки.
// Не является отрицанием HasVisibleSections.
func HasNoVisibleSections(enabled []string) bool {
	return len(enabled) == 0
}

// UnknownSections возвращает идентификаторы, которых нет в каталоге, в исходном порядке.
func UnknownSections(catalog model.Catalog, ids []string) []string {
	var unknown []string
	for _, id := range ids {
		if !catalog.Contains(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// Canonicalize убирает повторы и неизвестные идентификаторы и упорядочивает их по каталогу.
func Canonicalize(catalog model.Catalog, ids []string) []string {
	resolved := Resolve(catalog, ids)
	out := make([]string, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, r.Entry.ID)
	}
	return out
}
