package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/usecases"
)

type productHandlerStubs struct {
	productRepo  *productRepoStub
	categoryRepo *categoryRepoStub
	storeRepo    *storeRepoStub
	sizeRepo     *sizeRepoStub
	colorRepo    *colorRepoStub
}

func newProductRouter() (*gin.Engine, *productHandlerStubs) {
	gin.SetMode(gin.TestMode)
	stubs := &productHandlerStubs{
		productRepo:  &productRepoStub{},
		categoryRepo: &categoryRepoStub{},
		storeRepo:    &storeRepoStub{},
		sizeRepo:     &sizeRepoStub{},
		colorRepo:    &colorRepoStub{},
	}
	uc := usecases.NewProductUsecase(stubs.productRepo, stubs.categoryRepo, stubs.storeRepo, stubs.sizeRepo, stubs.colorRepo, &uowStub{})
	h := NewProductHandler(uc)
	r := gin.New()
	r.GET("/api/v1/products", h.List)
	r.POST("/api/v1/products", h.Create)
	r.GET("/api/v1/products/:id", h.Get)
	r.PUT("/api/v1/products/:id", h.Replace)
	r.PATCH("/api/v1/products/:id", h.Patch)
	r.DELETE("/api/v1/products/:id", h.Delete)
	return r, stubs
}

func TestProductHandler_Create(t *testing.T) {
	r, stubs := newProductRouter()

	stubs.categoryRepo.getByIDFn = func(ctx context.Context, id uint) (*entities.Category, error) {
		return &entities.Category{ID: id, Name: "Shoes"}, nil
	}
	stubs.sizeRepo.getByIDsFn = func(ctx context.Context, ids []uint) ([]entities.Size, error) {
		return []entities.Size{{ID: 1, SizeCode: "S"}, {ID: 2, SizeCode: "M"}}, nil
	}
	var created *entities.Product
	stubs.productRepo.createFn = func(ctx context.Context, product *entities.Product) error {
		product.ID = 10
		created = product
		return nil
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/products",
		`{"category":1,"name":"Sneaker","price":"49.99","discount_percentage":20,"on_sale":true,"stock":5,"sizes":[1,2]}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("49.99")))

	// discounted price rides along in every product payload
	assert.Contains(t, w.Body.String(), `"discounted_price":"39.992"`)
	assert.Contains(t, w.Body.String(), `"id":10`)
	assert.Contains(t, w.Body.String(), `"size_code":"S"`)
}

func TestProductHandler_Create_UnknownVariant(t *testing.T) {
	r, stubs := newProductRouter()

	stubs.categoryRepo.getByIDFn = func(ctx context.Context, id uint) (*entities.Category, error) {
		return &entities.Category{ID: id, Name: "Shoes"}, nil
	}
	stubs.sizeRepo.getByIDsFn = func(ctx context.Context, ids []uint) ([]entities.Size, error) {
		return nil, &domainerrors.UnknownVariantError{Kind: "size", ID: 42}
	}
	var createCalled bool
	stubs.productRepo.createFn = func(ctx context.Context, product *entities.Product) error {
		createCalled = true
		return nil
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/products",
		`{"category":1,"name":"Sneaker","price":"49.99","sizes":[42]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "size with id 42 not found")
	assert.False(t, createCalled)
}

func TestProductHandler_Create_Validation(t *testing.T) {
	r, _ := newProductRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/products",
		`{"category":1,"price":"9.99"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/products",
		`{"category":1,"name":"Sneaker","price":"9.99","discount_percentage":150}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/products",
		`{"name":"Sneaker","price":"9.99"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_GetAndList(t *testing.T) {
	r, stubs := newProductRouter()

	product := &entities.Product{
		ID:                 3,
		CategoryID:         1,
		Name:               "Sneaker",
		Price:              decimal.RequireFromString("100"),
		DiscountPercentage: 25,
		OnSale:             true,
		Sizes:              []entities.Size{{ID: 1, SizeCode: "S"}},
		Colors:             []entities.Color{{ID: 1, Color: "brown"}},
	}
	stubs.productRepo.getByIDFn = func(ctx context.Context, id uint) (*entities.Product, error) {
		if id == 3 {
			return product, nil
		}
		return nil, domainerrors.ErrNotFound
	}
	stubs.productRepo.listFn = func(ctx context.Context) ([]*entities.Product, error) {
		return []*entities.Product{product}, nil
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/products/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"discounted_price":"75"`)
	assert.Contains(t, w.Body.String(), `"color":"brown"`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"discounted_price":"75"`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/products/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/products/zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_PatchAndDelete(t *testing.T) {
	r, stubs := newProductRouter()

	product := &entities.Product{
		ID:         3,
		CategoryID: 1,
		Name:       "Sneaker",
		Price:      decimal.RequireFromString("100"),
		Sizes:      []entities.Size{{ID: 1, SizeCode: "S"}},
	}
	stubs.productRepo.getByIDFn = func(ctx context.Context, id uint) (*entities.Product, error) {
		if id == 3 {
			return product, nil
		}
		return nil, domainerrors.ErrNotFound
	}
	var updated *entities.Product
	stubs.productRepo.updateFn = func(ctx context.Context, p *entities.Product) error {
		updated = p
		return nil
	}
	var deletedID uint
	stubs.productRepo.deleteFn = func(ctx context.Context, id uint) error {
		deletedID = id
		return nil
	}

	w := doJSON(t, r, http.MethodPatch, "/api/v1/products/3", `{"stock":12}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	assert.Equal(t, uint(12), updated.Stock)
	// variant sets stay untouched when the patch omits them
	assert.Len(t, updated.Sizes, 1)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/products/99", `{"stock":12}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/products/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(3), deletedID)
}
