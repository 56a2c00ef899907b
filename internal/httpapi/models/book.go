package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null;index;size:200" json:"title"`
	Author      string    `gorm:"not null;index;size:100" json:"author"`
	Description *string   `gorm:"size:2000" json:"description,omitempty"`
	Genre       *string   `gorm:"index;size:50" json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty"`
	AddedBy     string    `gorm:"type:uuid;not null;index" json:"addedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Associations
	Owner User `json:"owner,omitempty" gorm:"foreignKey:AddedBy;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a Book
func (book *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
