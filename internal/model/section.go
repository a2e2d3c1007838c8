// Package model содержит доменные структуры дашборда: каталог секций, воркспейсы,
// участников, настройки пользователя и итоговую view-model экрана.
package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateSection возвращается при попытке собрать каталог с повторяющимся идентификатором.
var ErrDuplicateSection = errors.New("duplicate section id")

// SectionKind — закрытый перечень известных видов секций.
type SectionKind int

const (
	// KindChannels — список каналов, в которых состоит пользователь.
	KindChannels SectionKind = iota + 1
	// KindDMs — непрочитанные личные сообщения.
	KindDMs
	// KindIMs — все личные переписки.
	KindIMs
	// KindMPIMs — групповые личные переписки.
	KindMPIMs
	// KindPrivateChannels — приватные каналы.
	KindPrivateChannels
	// KindPublicChannels — публичные каналы воркспейса.
	KindPublicChannels
)

// String возвращает стабильное имя вида секции, которое используется в JSON.
func (k SectionKind) String() string {
	switch k {
	case KindChannels:
		return "channel_list"
	case KindDMs:
		return "dm_list"
	case KindIMs:
		return "im_list"
	case KindMPIMs:
		return "mpim_list"
	case KindPrivateChannels:
		return "private_channel_list"
	case KindPublicChannels:
		return "public_channel_list"
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

// MarshalText позволяет сериализовать SectionKind как строку.
func (k SectionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CatalogEntry описывает одну известную секцию: идентификатор, заголовок и вид.
type CatalogEntry struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Kind  SectionKind `json:"kind"`
}

// ResolvedSection — секция каталога, которую нужно отрисовать.
type ResolvedSection struct {
	Entry CatalogEntry
	Kind  SectionKind
}

// Catalog — упорядоченный неизменяемый список секций без повторов.
type Catalog struct {
	entries []CatalogEntry
	index   map[string]int
}

// NewCatalog собирает каталог в переданном порядке.
// Повтор идентификатора — ошибка программиста, возвращается ErrDuplicateSection.
func NewCatalog(entries ...CatalogEntry) (Catalog, error) {
	c := Catalog{
		entries: make([]CatalogEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.index[e.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: %q", ErrDuplicateSection, e.ID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustCatalog как NewCatalog, но паникует при ошибке.
func MustCatalog(entries ...CatalogEntry) Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Entries возвращает копию записей каталога в каноническом порядке.
func (c Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains сообщает, известен ли каталогу идентификатор.
func (c Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len возвращает количество секций.
func (c Catalog) Len() int {
	return len(c.entries)
}

// DefaultCatalog — системная таксономия секций. Порядок здесь и есть порядок отрисовки.
var DefaultCatalog = MustCatalog(
	CatalogEntry{ID: "channels", Title: "Channels", Kind: KindChannels},
	CatalogEntry{ID: "dms", Title: "Direct Messages", Kind: KindDMs},
	CatalogEntry{ID: "ims", Title: "Instant Messages", Kind: KindIMs},
	CatalogEntry{ID: "mpims", Title: "Group Messages", Kind: KindMPIMs},
	CatalogEntry{ID: "private-channels", Title: "Private Channels", Kind: KindPrivateChannels},
	CatalogEntry{ID: "public-channels", Title: "Public Channels", Kind: KindPublicChannels},
)
