package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/infrastructure/models"
)

// ColorRepository implements color data operations
type ColorRepository struct {
	db *gorm.DB
}

// NewColorRepository creates a new color repository
func NewColorRepository(db *gorm.DB) *ColorRepository {
	return &ColorRepository{db: db}
}

// List lists all colors
func (r *ColorRepository) List(ctx context.Context) ([]entities.Color, error) {
	var ms []models.Color
	if err := GetDB(ctx, r.db).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	colors := make([]entities.Color, 0, len(ms))
	for _, m := range ms {
		colors = append(colors, entities.Color{ID: m.ID, Color: m.Color})
	}
	return colors, nil
}

// GetByID gets a color by ID
func (r *ColorRepository) GetByID(ctx context.Context, id uint) (*entities.Color, error) {
	var m models.Color
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Color{ID: m.ID, Color: m.Color}, nil
}

// GetByIDs resolves colors in request order. The first id that does not
// exist yields an UnknownVariantError and no partial result.
func (r *ColorRepository) GetByIDs(ctx context.Context, ids []uint) ([]entities.Color, error) {
	if len(ids) == 0 {
		return []entities.Color{}, nil
	}

	var ms []models.Color
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]entities.Color, len(ms))
	for _, m := range ms {
		byID[m.ID] = entities.Color{ID: m.ID, Color: m.Color}
	}

	colors := make([]entities.Color, 0, len(ids))
	for _, id := range ids {
		color, ok := byID[id]
		if !ok {
			return nil, &domainerrors.UnknownVariantError{Kind: "color", ID: id}
		}
		colors = append(colors, color)
	}
	return colors, nil
}

// Create creates a new color
func (r *ColorRepository) Create(ctx context.Context, color *entities.Color) error {
	m := &models.Color{Color: color.Color}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	color.ID = m.ID
	return nil
}

// Update replaces a color's name
func (r *ColorRepository) Update(ctx context.Context, color *entities.Color) error {
	result := GetDB(ctx, r.db).Model(&models.Color{}).Where("id = ?", color.ID).Update("color", color.Color)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a color
func (r *ColorRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).Delete(&models.Color{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
