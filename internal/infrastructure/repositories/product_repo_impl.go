package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/infrastructure/models"
)

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List lists all products with their variant sets
func (r *ProductRepository) List(ctx context.Context) ([]*entities.Product, error) {
	var ms []models.Product
	if err := GetDB(ctx, r.db).Preload("Sizes").Preload("Colors").Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	products := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		products = append(products, productToEntity(&ms[i]))
	}
	return products, nil
}

// GetByID gets a product by ID with its variant sets
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).Preload("Sizes").Preload("Colors").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// Create persists a product and its variant sets. The caller resolves
// the sets beforehand; both writes belong in one transaction.
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	db := GetDB(ctx, r.db)

	m := productToModel(product)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}

	if err := r.replaceVariants(db, m, product.Sizes, product.Colors); err != nil {
		return err
	}

	product.ID = m.ID
	return nil
}

// Update replaces a product's fields and variant sets
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	db := GetDB(ctx, r.db)

	result := db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"store_id":               product.StoreID,
		"category_id":            product.CategoryID,
		"name":                   product.Name,
		"description":            product.Description,
		"price":                  product.Price,
		"discount_percentage":    product.DiscountPercentage,
		"main_image":             product.MainImage,
		"hover_image":            product.HoverImage,
		"on_sale":                product.OnSale,
		"stock":                  product.Stock,
		"created_by_super_admin": product.CreatedBySuperAdmin,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	m := &models.Product{ID: product.ID}
	return r.replaceVariants(db, m, product.Sizes, product.Colors)
}

// Delete removes a product and its variant associations
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)

	m := &models.Product{ID: id}
	if err := db.Model(m).Association("Sizes").Clear(); err != nil {
		return err
	}
	if err := db.Model(m).Association("Colors").Clear(); err != nil {
		return err
	}

	result := db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// replaceVariants swaps both association sets for exactly the given ones.
func (r *ProductRepository) replaceVariants(db *gorm.DB, m *models.Product, sizes []entities.Size, colors []entities.Color) error {
	sizeModels := make([]models.Size, 0, len(sizes))
	for _, s := range sizes {
		sizeModels = append(sizeModels, models.Size{ID: s.ID, SizeCode: s.SizeCode})
	}
	if err := db.Model(m).Association("Sizes").Replace(&sizeModels); err != nil {
		return err
	}

	colorModels := make([]models.Color, 0, len(colors))
	for _, c := range colors {
		colorModels = append(colorModels, models.Color{ID: c.ID, Color: c.Color})
	}
	return db.Model(m).Association("Colors").Replace(&colorModels)
}

func productToModel(p *entities.Product) *models.Product {
	return &models.Product{
		ID:                  p.ID,
		StoreID:             p.StoreID,
		CategoryID:          p.CategoryID,
		Name:                p.Name,
		Description:         p.Description,
		Price:               p.Price,
		DiscountPercentage:  p.DiscountPercentage,
		MainImage:           p.MainImage,
		HoverImage:          p.HoverImage,
		OnSale:              p.OnSale,
		Stock:               p.Stock,
		CreatedBySuperAdmin: p.CreatedBySuperAdmin,
	}
}

func productToEntity(m *models.Product) *entities.Product {
	sizes := make([]entities.Size, 0, len(m.Sizes))
	for _, s := range m.Sizes {
		sizes = append(sizes, entities.Size{ID: s.ID, SizeCode: s.SizeCode})
	}
	colors := make([]entities.Color, 0, len(m.Colors))
	for _, c := range m.Colors {
		colors = append(colors, entities.Color{ID: c.ID, Color: c.Color})
	}
	return &entities.Product{
		ID:                  m.ID,
		StoreID:             m.StoreID,
		CategoryID:          m.CategoryID,
		Name:                m.Name,
		Description:         m.Description,
		Price:               m.Price,
		DiscountPercentage:  m.DiscountPercentage,
		MainImage:           m.MainImage,
		HoverImage:          m.HoverImage,
		OnSale:              m.OnSale,
		Stock:               m.Stock,
		CreatedBySuperAdmin: m.CreatedBySuperAdmin,
		Sizes:               sizes,
		Colors:              colors,
	}
}
