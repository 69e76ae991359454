package usecases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/usecases"
)

type productMocks struct {
	productRepo  *MockProductRepository
	categoryRepo *MockCategoryRepository
	storeRepo    *MockStoreRepository
	sizeRepo     *MockSizeRepository
	colorRepo    *MockColorRepository
	uow          *MockUnitOfWork
}

func newProductUsecaseForTest() (*usecases.ProductUsecase, *productMocks) {
	m := &productMocks{
		productRepo:  new(MockProductRepository),
		categoryRepo: new(MockCategoryRepository),
		storeRepo:    new(MockStoreRepository),
		sizeRepo:     new(MockSizeRepository),
		colorRepo:    new(MockColorRepository),
		uow:          new(MockUnitOfWork),
	}
	uc := usecases.NewProductUsecase(m.productRepo, m.categoryRepo, m.storeRepo, m.sizeRepo, m.colorRepo, m.uow)
	return uc, m
}

func TestProductUsecase_Create_Success(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	m.categoryRepo.On("GetByID", ctx, uint(1)).Return(&entities.Category{ID: 1, Name: "Shirts"}, nil).Once()
	m.sizeRepo.On("GetByIDs", ctx, []uint{1, 2}).Return([]entities.Size{{ID: 1, SizeCode: "S"}, {ID: 2, SizeCode: "M"}}, nil).Once()
	m.colorRepo.On("GetByIDs", ctx, []uint(nil)).Return([]entities.Color{}, nil).Once()
	m.uow.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	m.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Product")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Product).ID = 12
	}).Once()

	product, err := uc.Create(ctx, &entities.ProductInput{
		CategoryID:         1,
		Name:               "Linen Shirt",
		Price:              decimal.RequireFromString("49.99"),
		DiscountPercentage: 20,
		Sizes:              []uint{1, 2},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(12), product.ID)
	assert.Len(t, product.Sizes, 2)
	assert.True(t, product.DiscountedPrice().Equal(decimal.RequireFromString("39.992")))
}

func TestProductUsecase_Create_UnknownSizeWritesNothing(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	m.categoryRepo.On("GetByID", ctx, uint(1)).Return(&entities.Category{ID: 1}, nil).Once()
	m.sizeRepo.On("GetByIDs", ctx, []uint{99}).Return(nil, &domainerrors.UnknownVariantError{Kind: "size", ID: 99}).Once()

	_, err := uc.Create(ctx, &entities.ProductInput{
		CategoryID: 1,
		Name:       "Tee",
		Price:      decimal.NewFromInt(10),
		Sizes:      []uint{99},
	})
	var unknown *domainerrors.UnknownVariantError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint(99), unknown.ID)
	m.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestProductUsecase_Create_MissingReferences(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	m.categoryRepo.On("GetByID", ctx, uint(5)).Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.Create(ctx, &entities.ProductInput{CategoryID: 5, Name: "x", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	storeID := uint(3)
	m.categoryRepo.On("GetByID", ctx, uint(1)).Return(&entities.Category{ID: 1}, nil).Once()
	m.storeRepo.On("GetByID", ctx, storeID).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Create(ctx, &entities.ProductInput{CategoryID: 1, StoreID: &storeID, Name: "x", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductUsecase_Replace_SwapsVariantSets(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	m.productRepo.On("GetByID", ctx, uint(12)).Return(&entities.Product{
		ID:    12,
		Sizes: []entities.Size{{ID: 1, SizeCode: "S"}, {ID: 2, SizeCode: "M"}},
	}, nil).Once()
	m.categoryRepo.On("GetByID", ctx, uint(1)).Return(&entities.Category{ID: 1}, nil).Once()
	m.sizeRepo.On("GetByIDs", ctx, []uint{3}).Return([]entities.Size{{ID: 3, SizeCode: "L"}}, nil).Once()
	m.colorRepo.On("GetByIDs", ctx, []uint(nil)).Return([]entities.Color{}, nil).Once()
	m.uow.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	m.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Product")).Return(nil).Once()

	product, err := uc.Replace(ctx, 12, &entities.ProductInput{
		CategoryID: 1,
		Name:       "Tee",
		Price:      decimal.NewFromInt(15),
		Sizes:      []uint{3},
	})
	assert.NoError(t, err)
	assert.Len(t, product.Sizes, 1)
	assert.Equal(t, "L", product.Sizes[0].SizeCode)
}

func TestProductUsecase_Patch_NilSetsLeaveVariantsUntouched(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	stored := &entities.Product{
		ID:         12,
		CategoryID: 1,
		Name:       "Tee",
		Price:      decimal.NewFromInt(15),
		Sizes:      []entities.Size{{ID: 1, SizeCode: "S"}},
		Colors:     []entities.Color{{ID: 4, Color: "white"}},
	}
	m.productRepo.On("GetByID", ctx, uint(12)).Return(stored, nil).Once()
	m.uow.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	m.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Product")).Return(nil).Once()

	name := "Graphic Tee"
	product, err := uc.Patch(ctx, 12, &entities.ProductPatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Graphic Tee", product.Name)
	assert.Len(t, product.Sizes, 1)
	assert.Len(t, product.Colors, 1)
	m.sizeRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	m.colorRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestProductUsecase_Patch_EmptySetClearsVariants(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	stored := &entities.Product{
		ID:    12,
		Name:  "Tee",
		Price: decimal.NewFromInt(15),
		Sizes: []entities.Size{{ID: 1, SizeCode: "S"}},
	}
	m.productRepo.On("GetByID", ctx, uint(12)).Return(stored, nil).Once()
	m.sizeRepo.On("GetByIDs", ctx, []uint{}).Return([]entities.Size{}, nil).Once()
	m.uow.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	m.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Product")).Return(nil).Once()

	product, err := uc.Patch(ctx, 12, &entities.ProductPatch{Sizes: []uint{}})
	assert.NoError(t, err)
	assert.Empty(t, product.Sizes)
}

func TestProductUsecase_Patch_UnknownColorLeavesProductUnchanged(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	stored := &entities.Product{ID: 12, Name: "Tee", Price: decimal.NewFromInt(15)}
	m.productRepo.On("GetByID", ctx, uint(12)).Return(stored, nil).Once()
	m.colorRepo.On("GetByIDs", ctx, []uint{42}).Return(nil, &domainerrors.UnknownVariantError{Kind: "color", ID: 42}).Once()

	_, err := uc.Patch(ctx, 12, &entities.ProductPatch{Colors: []uint{42}})
	var unknown *domainerrors.UnknownVariantError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "color", unknown.Kind)
	m.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductUsecase_ListGetDelete(t *testing.T) {
	uc, m := newProductUsecaseForTest()
	ctx := context.Background()

	m.productRepo.On("List", ctx).Return([]*entities.Product{{ID: 1}}, nil).Once()
	items, err := uc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	m.productRepo.On("GetByID", ctx, uint(1)).Return(&entities.Product{ID: 1}, nil).Once()
	got, err := uc.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)

	m.uow.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	m.productRepo.On("Delete", mock.Anything, uint(1)).Return(nil).Once()
	assert.NoError(t, uc.Delete(ctx, 1))

	m.uow.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	m.productRepo.On("Delete", mock.Anything, uint(9)).Return(domainerrors.ErrNotFound).Once()
	assert.ErrorIs(t, uc.Delete(ctx, 9), domainerrors.ErrNotFound)
}
