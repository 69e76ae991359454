package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/infrastructure/models"
)

// StoreRepository implements store data operations
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Create creates a new store
func (r *StoreRepository) Create(ctx context.Context, store *entities.Store) error {
	m := &models.Store{
		SellerID:    store.SellerID,
		Name:        store.Name,
		Description: store.Description,
		IsApproved:  store.IsApproved,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	store.ID = m.ID
	store.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a store by ID
func (r *StoreRepository) GetByID(ctx context.Context, id uint) (*entities.Store, error) {
	var m models.Store
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return storeToEntity(&m), nil
}

// Update replaces a store's fields
func (r *StoreRepository) Update(ctx context.Context, store *entities.Store) error {
	result := GetDB(ctx, r.db).Model(&models.Store{}).Where("id = ?", store.ID).Updates(map[string]interface{}{
		"seller_id":   store.SellerID,
		"name":        store.Name,
		"description": store.Description,
		"is_approved": store.IsApproved,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a store
func (r *StoreRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).Delete(&models.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func storeToEntity(m *models.Store) *entities.Store {
	return &entities.Store{
		ID:          m.ID,
		SellerID:    m.SellerID,
		Name:        m.Name,
		Description: m.Description,
		IsApproved:  m.IsApproved,
		CreatedAt:   m.CreatedAt,
	}
}
