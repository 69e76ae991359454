package entities

import (
	"time"
)

// Category groups products. Every product references exactly one category.
type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryInput represents input for creating or replacing a category
type CategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// Store is a seller's shop. Visibility is gated by the approval flag.
type Store struct {
	ID          uint      `json:"id"`
	SellerID    uint      `json:"seller"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StoreInput represents input for creating or replacing a store
type StoreInput struct {
	SellerID    uint   `json:"seller" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	IsApproved  bool   `json:"is_approved"`
}

// StorePatch carries a partial store update.
type StorePatch struct {
	SellerID    *uint   `json:"seller"`
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	IsApproved  *bool   `json:"is_approved"`
}

// SizeCodes is the fixed set of valid size codes.
var SizeCodes = []string{"S", "M", "L", "XL"}

// Size is an enumerated size code available to products.
type Size struct {
	ID       uint   `json:"id"`
	SizeCode string `json:"size_code"`
}

// SizeInput represents input for creating or replacing a size
type SizeInput struct {
	SizeCode string `json:"size_code" binding:"required,oneof=S M L XL"`
}

// ColorNames is the fixed palette of valid color names.
var ColorNames = []string{
	"brown", "purple", "green", "dark", "blue",
	"dark-blue", "white", "light-grey", "orange", "pink",
}

// Color is an enumerated color available to products.
type Color struct {
	ID    uint   `json:"id"`
	Color string `json:"color"`
}

// ColorInput represents input for creating or replacing a color
type ColorInput struct {
	Color string `json:"color" binding:"required,oneof=brown purple green dark blue dark-blue white light-grey orange pink"`
}
