package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(16);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Email        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"type:varchar(32);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(32);not null" json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Notes    []Note          `gorm:"foreignKey:AuthorID" json:"-"`
	Searches []SearchHistory `gorm:"foreignKey:AuthorID" json:"-"`
}
