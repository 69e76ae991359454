package entities

import (
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Product is a catalog entry with two independent many-to-many variant
// sets (sizes, colors) and a derived discounted price.
type Product struct {
	ID                  uint            `json:"id"`
	StoreID             null.Uint       `json:"store"`
	CategoryID          uint            `json:"category"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	DiscountPercentage  uint            `json:"discount_percentage"`
	MainImage           null.String     `json:"main_image"`
	HoverImage          null.String     `json:"hover_image"`
	OnSale              bool            `json:"on_sale"`
	Stock               uint            `json:"stock"`
	CreatedBySuperAdmin bool            `json:"created_by_super_admin"`
	Sizes               []Size          `json:"sizes"`
	Colors              []Color         `json:"colors"`
}

// DiscountedPrice derives the effective price in fixed-point decimal
// arithmetic: price × (100 − d)/100, or price unchanged when d is zero.
func (p *Product) DiscountedPrice() decimal.Decimal {
	if p.DiscountPercentage == 0 {
		return p.Price
	}
	return p.Price.Mul(decimal.New(100-int64(p.DiscountPercentage), -2))
}

// EffectiveDiscountPercentage mirrors the serialized discount field: zero
// when no discount applies.
func (p *Product) EffectiveDiscountPercentage() uint {
	return p.DiscountPercentage
}

// ProductInput represents input for creating or replacing a product.
// Sizes and Colors name the complete requested variant sets by id.
type ProductInput struct {
	StoreID             *uint           `json:"store"`
	CategoryID          uint            `json:"category" binding:"required"`
	Name                string          `json:"name" binding:"required,max=255"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price" binding:"required"`
	DiscountPercentage  uint            `json:"discount_percentage" binding:"lte=100"`
	MainImage           *string         `json:"main_image"`
	HoverImage          *string         `json:"hover_image"`
	OnSale              bool            `json:"on_sale"`
	Stock               uint            `json:"stock"`
	CreatedBySuperAdmin bool            `json:"created_by_super_admin"`
	Sizes               []uint          `json:"sizes"`
	Colors              []uint          `json:"colors"`
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched; non-nil Sizes/Colors trigger variant reconciliation.
type ProductPatch struct {
	StoreID             *uint            `json:"store"`
	CategoryID          *uint            `json:"category"`
	Name                *string          `json:"name" binding:"omitempty,max=255"`
	Description         *string          `json:"description"`
	Price               *decimal.Decimal `json:"price"`
	DiscountPercentage  *uint            `json:"discount_percentage" binding:"omitempty,lte=100"`
	MainImage           *string          `json:"main_image"`
	HoverImage          *string          `json:"hover_image"`
	OnSale              *bool            `json:"on_sale"`
	Stock               *uint            `json:"stock"`
	CreatedBySuperAdmin *bool            `json:"created_by_super_admin"`
	Sizes               []uint           `json:"sizes"`
	Colors              []uint           `json:"colors"`
}
