package usecases

import (
	"context"

	"github.com/volatiletech/null/v8"

	"ecomus.backend/internal/domain/entities"
	"ecomus.backend/internal/domain/repositories"
)

// ProductUsecase handles product business logic, including variant set
// reconciliation against the size and color catalogs.
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	storeRepo    repositories.StoreRepository
	sizeRepo     repositories.SizeRepository
	colorRepo    repositories.ColorRepository
	uow          repositories.UnitOfWork
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	storeRepo repositories.StoreRepository,
	sizeRepo repositories.SizeRepository,
	colorRepo repositories.ColorRepository,
	uow repositories.UnitOfWork,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		sizeRepo:     sizeRepo,
		colorRepo:    colorRepo,
		uow:          uow,
	}
}

// List lists all products
func (u *ProductUsecase) List(ctx context.Context) ([]*entities.Product, error) {
	return u.productRepo.List(ctx)
}

// GetByID gets a product by ID
func (u *ProductUsecase) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// Create creates a product with its requested variant sets. Every
// referenced size, color, category and store must exist; nothing is
// written when any of them does not.
func (u *ProductUsecase) Create(ctx context.Context, input *entities.ProductInput) (*entities.Product, error) {
	if _, err := u.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if input.StoreID != nil {
		if _, err := u.storeRepo.GetByID(ctx, *input.StoreID); err != nil {
			return nil, err
		}
	}

	sizes, err := u.sizeRepo.GetByIDs(ctx, input.Sizes)
	if err != nil {
		return nil, err
	}
	colors, err := u.colorRepo.GetByIDs(ctx, input.Colors)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		StoreID:             null.UintFromPtr(input.StoreID),
		CategoryID:          input.CategoryID,
		Name:                input.Name,
		Description:         input.Description,
		Price:               input.Price,
		DiscountPercentage:  input.DiscountPercentage,
		MainImage:           null.StringFromPtr(input.MainImage),
		HoverImage:          null.StringFromPtr(input.HoverImage),
		OnSale:              input.OnSale,
		Stock:               input.Stock,
		CreatedBySuperAdmin: input.CreatedBySuperAdmin,
		Sizes:               sizes,
		Colors:              colors,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.productRepo.Create(txCtx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Replace overwrites every field of a product and swaps both variant
// sets for exactly the requested ones.
func (u *ProductUsecase) Replace(ctx context.Context, id uint, input *entities.ProductInput) (*entities.Product, error) {
	if _, err := u.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := u.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if input.StoreID != nil {
		if _, err := u.storeRepo.GetByID(ctx, *input.StoreID); err != nil {
			return nil, err
		}
	}

	sizes, err := u.sizeRepo.GetByIDs(ctx, input.Sizes)
	if err != nil {
		return nil, err
	}
	colors, err := u.colorRepo.GetByIDs(ctx, input.Colors)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		ID:                  id,
		StoreID:             null.UintFromPtr(input.StoreID),
		CategoryID:          input.CategoryID,
		Name:                input.Name,
		Description:         input.Description,
		Price:               input.Price,
		DiscountPercentage:  input.DiscountPercentage,
		MainImage:           null.StringFromPtr(input.MainImage),
		HoverImage:          null.StringFromPtr(input.HoverImage),
		OnSale:              input.OnSale,
		Stock:               input.Stock,
		CreatedBySuperAdmin: input.CreatedBySuperAdmin,
		Sizes:               sizes,
		Colors:              colors,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.productRepo.Update(txCtx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Patch applies a partial update. Variant sets are reconciled only when
// the request names them; a nil set leaves the stored one untouched.
func (u *ProductUsecase) Patch(ctx context.Context, id uint, patch *entities.ProductPatch) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *patch.CategoryID
	}
	if patch.StoreID != nil {
		if _, err := u.storeRepo.GetByID(ctx, *patch.StoreID); err != nil {
			return nil, err
		}
		product.StoreID = null.UintFrom(*patch.StoreID)
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.DiscountPercentage != nil {
		product.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.MainImage != nil {
		product.MainImage = null.StringFrom(*patch.MainImage)
	}
	if patch.HoverImage != nil {
		product.HoverImage = null.StringFrom(*patch.HoverImage)
	}
	if patch.OnSale != nil {
		product.OnSale = *patch.OnSale
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.CreatedBySuperAdmin != nil {
		product.CreatedBySuperAdmin = *patch.CreatedBySuperAdmin
	}

	if patch.Sizes != nil {
		sizes, err := u.sizeRepo.GetByIDs(ctx, patch.Sizes)
		if err != nil {
			return nil, err
		}
		product.Sizes = sizes
	}
	if patch.Colors != nil {
		colors, err := u.colorRepo.GetByIDs(ctx, patch.Colors)
		if err != nil {
			return nil, err
		}
		product.Colors = colors
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.productRepo.Update(txCtx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product and its variant associations
func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.productRepo.Delete(txCtx, id)
	})
}
