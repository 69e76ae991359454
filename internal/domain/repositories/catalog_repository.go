package repositories

import (
	"context"

	"ecomus.backend/internal/domain/entities"
)

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uint) (*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, id uint) error
}

// StoreRepository defines store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entities.Store) error
	GetByID(ctx context.Context, id uint) (*entities.Store, error)
	Update(ctx context.Context, store *entities.Store) error
	Delete(ctx context.Context, id uint) error
}

// SizeRepository defines size data operations
type SizeRepository interface {
	List(ctx context.Context) ([]entities.Size, error)
	GetByID(ctx context.Context, id uint) (*entities.Size, error)
	// GetByIDs resolves every id in request order; the first id that does
	// not exist yields an *errors.UnknownVariantError.
	GetByIDs(ctx context.Context, ids []uint) ([]entities.Size, error)
	Create(ctx context.Context, size *entities.Size) error
	Update(ctx context.Context, size *entities.Size) error
	Delete(ctx context.Context, id uint) error
}

// ColorRepository defines color data operations
type ColorRepository interface {
	List(ctx context.Context) ([]entities.Color, error)
	GetByID(ctx context.Context, id uint) (*entities.Color, error)
	// GetByIDs resolves every id in request order; the first id that does
	// not exist yields an *errors.UnknownVariantError.
	GetByIDs(ctx context.Context, ids []uint) ([]entities.Color, error)
	Create(ctx context.Context, color *entities.Color) error
	Update(ctx context.Context, color *entities.Color) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository defines product data operations. Create and Update
// persist the product together with the variant sets carried on the
// entity, replacing any previous associations.
type ProductRepository interface {
	List(ctx context.Context) ([]*entities.Product, error)
	GetByID(ctx context.Context, id uint) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) error
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uint) error
}
