package models

type SearchType string

const (
	// SearchTypeSite searches the user's own notes.
	SearchTypeSite SearchType = "site"
	// SearchTypeGoogle dispatches to Google's query URL.
	SearchTypeGoogle SearchType = "google"
	// SearchTypeYouTube dispatches to YouTube's query URL.
	SearchTypeYouTube SearchType = "youtube"
)

// Valid reports whether t is one of the known search destinations.
func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeSite, SearchTypeGoogle, SearchTypeYouTube:
		return true
	}
	return false
}

// SearchHistory is a per-user deduplicated search log. The composite unique
// index makes repeat searches an upsert rather than a second row.
type SearchHistory struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	SearchType    SearchType `gorm:"type:varchar(20);not null;uniqueIndex:idx_search_histories_author_type_value" json:"search_type"`
	SearchValue   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_search_histories_author_type_value" json:"search_value"`
	TimesSearched int64      `gorm:"not null;default:1" json:"times_searched"`
	AuthorID      uint64     `gorm:"not null;uniqueIndex:idx_search_histories_author_type_value" json:"author_id"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
