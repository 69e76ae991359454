package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/infrastructure/models"
)

// SizeRepository implements size data operations
type SizeRepository struct {
	db *gorm.DB
}

// NewSizeRepository creates a new size repository
func NewSizeRepository(db *gorm.DB) *SizeRepository {
	return &SizeRepository{db: db}
}

// List lists all sizes
func (r *SizeRepository) List(ctx context.Context) ([]entities.Size, error) {
	var ms []models.Size
	if err := GetDB(ctx, r.db).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	sizes := make([]entities.Size, 0, len(ms))
	for _, m := range ms {
		sizes = append(sizes, entities.Size{ID: m.ID, SizeCode: m.SizeCode})
	}
	return sizes, nil
}

// GetByID gets a size by ID
func (r *SizeRepository) GetByID(ctx context.Context, id uint) (*entities.Size, error) {
	var m models.Size
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Size{ID: m.ID, SizeCode: m.SizeCode}, nil
}

// GetByIDs resolves sizes in request order. The first id that does not
// exist yields an UnknownVariantError and no partial result.
func (r *SizeRepository) GetByIDs(ctx context.Context, ids []uint) ([]entities.Size, error) {
	if len(ids) == 0 {
		return []entities.Size{}, nil
	}

	var ms []models.Size
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]entities.Size, len(ms))
	for _, m := range ms {
		byID[m.ID] = entities.Size{ID: m.ID, SizeCode: m.SizeCode}
	}

	sizes := make([]entities.Size, 0, len(ids))
	for _, id := range ids {
		size, ok := byID[id]
		if !ok {
			return nil, &domainerrors.UnknownVariantError{Kind: "size", ID: id}
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// Create creates a new size
func (r *SizeRepository) Create(ctx context.Context, size *entities.Size) error {
	m := &models.Size{SizeCode: size.SizeCode}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	size.ID = m.ID
	return nil
}

// Update replaces a size's code
func (r *SizeRepository) Update(ctx context.Context, size *entities.Size) error {
	result := GetDB(ctx, r.db).Model(&models.Size{}).Where("id = ?", size.ID).Update("size_code", size.SizeCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a size
func (r *SizeRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).Delete(&models.Size{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
