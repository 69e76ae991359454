package usecases

import (
	"context"
	"errors"
	"fmt"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/domain/repositories"
)

// CategoryUsecase handles category business logic
type CategoryUsecase struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryUsecase creates a new category usecase
func NewCategoryUsecase(categoryRepo repositories.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// Create creates a category
func (u *CategoryUsecase) Create(ctx context.Context, input *entities.CategoryInput) (*entities.Category, error) {
	category := &entities.Category{Name: input.Name, Description: input.Description}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID gets a category by ID
func (u *CategoryUsecase) GetByID(ctx context.Context, id uint) (*entities.Category, error) {
	return u.categoryRepo.GetByID(ctx, id)
}

// Replace overwrites every field of a category
func (u *CategoryUsecase) Replace(ctx context.Context, id uint, input *entities.CategoryInput) (*entities.Category, error) {
	category := &entities.Category{ID: id, Name: input.Name, Description: input.Description}
	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Patch applies a partial update to a category
func (u *CategoryUsecase) Patch(ctx context.Context, id uint, patch *entities.CategoryPatch) (*entities.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (u *CategoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.categoryRepo.Delete(ctx, id)
}

// StoreUsecase handles store business logic
type StoreUsecase struct {
	storeRepo repositories.StoreRepository
	userRepo  repositories.UserRepository
}

// NewStoreUsecase creates a new store usecase
func NewStoreUsecase(storeRepo repositories.StoreRepository, userRepo repositories.UserRepository) *StoreUsecase {
	return &StoreUsecase{storeRepo: storeRepo, userRepo: userRepo}
}

// Create creates a store for an existing seller
func (u *StoreUsecase) Create(ctx context.Context, input *entities.StoreInput) (*entities.Store, error) {
	if err := u.checkSeller(ctx, input.SellerID); err != nil {
		return nil, err
	}
	store := &entities.Store{
		SellerID:    input.SellerID,
		Name:        input.Name,
		Description: input.Description,
		IsApproved:  input.IsApproved,
	}
	if err := u.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetByID gets a store by ID
func (u *StoreUsecase) GetByID(ctx context.Context, id uint) (*entities.Store, error) {
	return u.storeRepo.GetByID(ctx, id)
}

// Replace overwrites every field of a store
func (u *StoreUsecase) Replace(ctx context.Context, id uint, input *entities.StoreInput) (*entities.Store, error) {
	if err := u.checkSeller(ctx, input.SellerID); err != nil {
		return nil, err
	}
	store, err := u.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	store.SellerID = input.SellerID
	store.Name = input.Name
	store.Description = input.Description
	store.IsApproved = input.IsApproved
	if err := u.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Patch applies a partial update to a store
func (u *StoreUsecase) Patch(ctx context.Context, id uint, patch *entities.StorePatch) (*entities.Store, error) {
	store, err := u.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.SellerID != nil {
		if err := u.checkSeller(ctx, *patch.SellerID); err != nil {
			return nil, err
		}
		store.SellerID = *patch.SellerID
	}
	if patch.Name != nil {
		store.Name = *patch.Name
	}
	if patch.Description != nil {
		store.Description = *patch.Description
	}
	if patch.IsApproved != nil {
		store.IsApproved = *patch.IsApproved
	}
	if err := u.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Delete removes a store
func (u *StoreUsecase) Delete(ctx context.Context, id uint) error {
	return u.storeRepo.Delete(ctx, id)
}

// checkSeller rejects seller ids that do not resolve to a user.
func (u *StoreUsecase) checkSeller(ctx context.Context, sellerID uint) error {
	if _, err := u.userRepo.GetByID(ctx, sellerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest(fmt.Sprintf("seller with id %d not found", sellerID))
		}
		return err
	}
	return nil
}

// SizeUsecase handles size variant business logic
type SizeUsecase struct {
	sizeRepo repositories.SizeRepository
}

// NewSizeUsecase creates a new size usecase
func NewSizeUsecase(sizeRepo repositories.SizeRepository) *SizeUsecase {
	return &SizeUsecase{sizeRepo: sizeRepo}
}

// List lists all sizes
func (u *SizeUsecase) List(ctx context.Context) ([]entities.Size, error) {
	return u.sizeRepo.List(ctx)
}

// GetByID gets a size by ID
func (u *SizeUsecase) GetByID(ctx context.Context, id uint) (*entities.Size, error) {
	return u.sizeRepo.GetByID(ctx, id)
}

// Create creates a size
func (u *SizeUsecase) Create(ctx context.Context, input *entities.SizeInput) (*entities.Size, error) {
	size := &entities.Size{SizeCode: input.SizeCode}
	if err := u.sizeRepo.Create(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

// Replace overwrites a size's code
func (u *SizeUsecase) Replace(ctx context.Context, id uint, input *entities.SizeInput) (*entities.Size, error) {
	size := &entities.Size{ID: id, SizeCode: input.SizeCode}
	if err := u.sizeRepo.Update(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

// Delete removes a size
func (u *SizeUsecase) Delete(ctx context.Context, id uint) error {
	return u.sizeRepo.Delete(ctx, id)
}

// ColorUsecase handles color variant business logic
type ColorUsecase struct {
	colorRepo repositories.ColorRepository
}

// NewColorUsecase creates a new color usecase
func NewColorUsecase(colorRepo repositories.ColorRepository) *ColorUsecase {
	return &ColorUsecase{colorRepo: colorRepo}
}

// List lists all colors
func (u *ColorUsecase) List(ctx context.Context) ([]entities.Color, error) {
	return u.colorRepo.List(ctx)
}

// GetByID gets a color by ID
func (u *ColorUsecase) GetByID(ctx context.Context, id uint) (*entities.Color, error) {
	return u.colorRepo.GetByID(ctx, id)
}

// Create creates a color
func (u *ColorUsecase) Create(ctx context.Context, input *entities.ColorInput) (*entities.Color, error) {
	color := &entities.Color{Color: input.Color}
	if err := u.colorRepo.Create(ctx, color); err != nil {
		return nil, err
	}
	return color, nil
}

// Replace overwrites a color's name
func (u *ColorUsecase) Replace(ctx context.Context, id uint, input *entities.ColorInput) (*entities.Color, error) {
	color := &entities.Color{ID: id, Color: input.Color}
	if err := u.colorRepo.Update(ctx, color); err != nil {
		return nil, err
	}
	return color, nil
}

// Delete removes a color
func (u *ColorUsecase) Delete(ctx context.Context, id uint) error {
	return u.colorRepo.Delete(ctx, id)
}
