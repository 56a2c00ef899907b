package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a single user's star rating (1..5) of a book with optional text.
// The one-review-per-(book,user) rule is enforced by a pre-insert existence
// check in the service layer, not by a storage constraint.
type Review struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	BookID     string    `gorm:"type:uuid;not null;index" json:"bookId"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"userId"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText *string   `gorm:"size:5000" json:"reviewText,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Book Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a Review
func (review *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}
