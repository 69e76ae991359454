package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/infrastructure/models"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	m := &models.Category{
		Name:        category.Name,
		Description: category.Description,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	category.ID = m.ID
	return nil
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Category{ID: m.ID, Name: m.Name, Description: m.Description}, nil
}

// Update replaces a category's fields
func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	result := GetDB(ctx, r.db).Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
