package models

import (
	"time"
)

type Note struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(32);not null" json:"title"`
	Body      string    `gorm:"type:varchar(20000)" json:"body"`
	Primary   bool      `gorm:"not null;default:false" json:"primary"`
	Sticky    bool      `gorm:"not null;default:false" json:"sticky"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	// EditedAt is bumped on updates only; creation leaves it equal to CreatedAt.
	EditedAt time.Time `json:"edited_at"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
