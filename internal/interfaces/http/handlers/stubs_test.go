package handlers

import (
	"context"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
)

type userRepoStub struct {
	createFn         func(ctx context.Context, user *entities.User) error
	getByIDFn        func(ctx context.Context, id uint) (*entities.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*entities.User, error)
	setActiveFn      func(ctx context.Context, id uint) error
	updatePasswordFn func(ctx context.Context, id uint, passwordHash string) error
	deleteFn         func(ctx context.Context, id uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) SetActive(ctx context.Context, id uint) error {
	if s.setActiveFn != nil {
		return s.setActiveFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type profileRepoStub struct {
	createFn           func(ctx context.Context, profile *entities.Profile) error
	getByIDFn          func(ctx context.Context, id uint) (*entities.Profile, error)
	getByUserIDFn      func(ctx context.Context, userID uint) (*entities.Profile, error)
	setEmailVerifiedFn func(ctx context.Context, userID uint) error
}

func (s *profileRepoStub) Create(ctx context.Context, profile *entities.Profile) error {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	return nil
}

func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*entities.Profile, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*entities.Profile, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *profileRepoStub) SetEmailVerified(ctx context.Context, userID uint) error {
	if s.setEmailVerifiedFn != nil {
		return s.setEmailVerifiedFn(ctx, userID)
	}
	return nil
}

type categoryRepoStub struct {
	createFn  func(ctx context.Context, category *entities.Category) error
	getByIDFn func(ctx context.Context, id uint) (*entities.Category, error)
	updateFn  func(ctx context.Context, category *entities.Category) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, category *entities.Category) error {
	if s.createFn != nil {
		return s.createFn(ctx, category)
	}
	return nil
}

func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*entities.Category, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *categoryRepoStub) Update(ctx context.Context, category *entities.Category) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, category)
	}
	return nil
}

func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type storeRepoStub struct {
	createFn  func(ctx context.Context, store *entities.Store) error
	getByIDFn func(ctx context.Context, id uint) (*entities.Store, error)
	updateFn  func(ctx context.Context, store *entities.Store) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *storeRepoStub) Create(ctx context.Context, store *entities.Store) error {
	if s.createFn != nil {
		return s.createFn(ctx, store)
	}
	return nil
}

func (s *storeRepoStub) GetByID(ctx context.Context, id uint) (*entities.Store, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *storeRepoStub) Update(ctx context.Context, store *entities.Store) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, store)
	}
	return nil
}

func (s *storeRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type sizeRepoStub struct {
	listFn     func(ctx context.Context) ([]entities.Size, error)
	getByIDFn  func(ctx context.Context, id uint) (*entities.Size, error)
	getByIDsFn func(ctx context.Context, ids []uint) ([]entities.Size, error)
	createFn   func(ctx context.Context, size *entities.Size) error
	updateFn   func(ctx context.Context, size *entities.Size) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (s *sizeRepoStub) List(ctx context.Context) ([]entities.Size, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []entities.Size{}, nil
}

func (s *sizeRepoStub) GetByID(ctx context.Context, id uint) (*entities.Size, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *sizeRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]entities.Size, error) {
	if s.getByIDsFn != nil {
		return s.getByIDsFn(ctx, ids)
	}
	return []entities.Size{}, nil
}

func (s *sizeRepoStub) Create(ctx context.Context, size *entities.Size) error {
	if s.createFn != nil {
		return s.createFn(ctx, size)
	}
	return nil
}

func (s *sizeRepoStub) Update(ctx context.Context, size *entities.Size) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, size)
	}
	return nil
}

func (s *sizeRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type colorRepoStub struct {
	listFn     func(ctx context.Context) ([]entities.Color, error)
	getByIDFn  func(ctx context.Context, id uint) (*entities.Color, error)
	getByIDsFn func(ctx context.Context, ids []uint) ([]entities.Color, error)
	createFn   func(ctx context.Context, color *entities.Color) error
	updateFn   func(ctx context.Context, color *entities.Color) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (s *colorRepoStub) List(ctx context.Context) ([]entities.Color, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []entities.Color{}, nil
}

func (s *colorRepoStub) GetByID(ctx context.Context, id uint) (*entities.Color, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *colorRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]entities.Color, error) {
	if s.getByIDsFn != nil {
		return s.getByIDsFn(ctx, ids)
	}
	return []entities.Color{}, nil
}

func (s *colorRepoStub) Create(ctx context.Context, color *entities.Color) error {
	if s.createFn != nil {
		return s.createFn(ctx, color)
	}
	return nil
}

func (s *colorRepoStub) Update(ctx context.Context, color *entities.Color) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, color)
	}
	return nil
}

func (s *colorRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type productRepoStub struct {
	listFn    func(ctx context.Context) ([]*entities.Product, error)
	getByIDFn func(ctx context.Context, id uint) (*entities.Product, error)
	createFn  func(ctx context.Context, product *entities.Product) error
	updateFn  func(ctx context.Context, product *entities.Product) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *productRepoStub) List(ctx context.Context) ([]*entities.Product, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Product{}, nil
}

func (s *productRepoStub) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *productRepoStub) Create(ctx context.Context, product *entities.Product) error {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	return nil
}

func (s *productRepoStub) Update(ctx context.Context, product *entities.Product) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, product)
	}
	return nil
}

func (s *productRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

// uowStub runs the unit of work body directly.
type uowStub struct{}

func (s *uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mailerStub struct {
	activationFn func(ctx context.Context, to, link string) error
	resetFn      func(ctx context.Context, to, link string) error
}

func (s *mailerStub) SendActivationEmail(ctx context.Context, to, link string) error {
	if s.activationFn != nil {
		return s.activationFn(ctx, to, link)
	}
	return nil
}

func (s *mailerStub) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	if s.resetFn != nil {
		return s.resetFn(ctx, to, link)
	}
	return nil
}
