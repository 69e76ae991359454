package models

import (
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type Product struct {
	ID                  uint            `gorm:"primaryKey"`
	StoreID             null.Uint       `gorm:"index"`
	CategoryID          uint            `gorm:"not null;index"`
	Name                string          `gorm:"type:varchar(255);not null;default:''"`
	Description         string          `gorm:"type:text;not null"`
	Price               decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountPercentage  uint            `gorm:"not null;default:0"`
	MainImage           null.String     `gorm:"type:varchar(255)"`
	HoverImage          null.String     `gorm:"type:varchar(255)"`
	OnSale              bool            `gorm:"not null;default:false"`
	Stock               uint            `gorm:"not null;default:0"`
	CreatedBySuperAdmin bool            `gorm:"not null;default:false"`

	// Associations
	Store    *Store   `gorm:"foreignKey:StoreID"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Sizes    []Size   `gorm:"many2many:product_sizes"`
	Colors   []Color  `gorm:"many2many:product_colors"`
}
