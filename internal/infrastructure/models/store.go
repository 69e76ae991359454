package models

import (
	"time"
)

type Store struct {
	ID          uint   `gorm:"primaryKey"`
	SellerID    uint   `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	IsApproved  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time

	// Associations
	Seller User `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}
