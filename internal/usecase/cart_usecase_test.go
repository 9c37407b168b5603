package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

func newCartUsecaseForTest() (*CartUsecase, *mockCartRepo, *mockCartItemRepo, *mockProductRepo) {
	carts := new(mockCartRepo)
	items := new(mockCartItemRepo)
	products := new(mockProductRepo)
	return NewCartUsecase(carts, items, products), carts, items, products
}

// memCartRepo is a stateful stand-in for the find-or-create behavior.
type memCartRepo struct {
	carts  map[int64]model.ShoppingCart
	nextID int64
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[int64]model.ShoppingCart{}, nextID: 1}
}

func (m *memCartRepo) GetOrCreateByUserID(_ context.Context, userID int64) (model.ShoppingCart, error) {
	if c, ok := m.carts[userID]; ok {
		return c, nil
	}
	c := model.ShoppingCart{ID: m.nextID, UserID: userID}
	m.nextID++
	m.carts[userID] = c
	return c, nil
}

func (m *memCartRepo) FindByUserID(_ context.Context, userID int64) (model.ShoppingCart, error) {
	c, ok := m.carts[userID]
	if !ok {
		return model.ShoppingCart{}, repo.ErrNotFound
	}
	return c, nil
}

func (m *memCartRepo) Clear(context.Context, int64) error { return nil }

func TestGetOrCreateCart_LazyCreateIsIdempotent(t *testing.T) {
	carts := newMemCartRepo()
	items := new(mockCartItemRepo)
	uc := NewCartUsecase(carts, items, new(mockProductRepo))
	ctx := context.Background()

	items.On("ListByCartID", ctx, mock.Anything).Return([]model.CartItem{}, nil)

	first, err := uc.GetOrCreateCart(ctx, 7)
	assert.NoError(t, err)

	second, err := uc.GetOrCreateCart(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := uc.GetOrCreateCart(ctx, 8)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestGetOrCreateCart_Unauthorized(t *testing.T) {
	uc, _, _, _ := newCartUsecaseForTest()

	_, err := uc.GetOrCreateCart(context.Background(), 0)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestGetOrCreateCart_BuildsTotals(t *testing.T) {
	uc, carts, items, products := newCartUsecaseForTest()
	ctx := context.Background()

	carts.On("GetOrCreateByUserID", ctx, int64(7)).
		Return(model.ShoppingCart{ID: 3, UserID: 7}, nil)
	items.On("ListByCartID", ctx, int64(3)).Return([]model.CartItem{
		{ID: 1, CartID: 3, ProductID: 10, Quantity: 2, PriceAtTime: 500},
		{ID: 2, CartID: 3, ProductID: 11, Quantity: 1, PriceAtTime: 1200},
	}, nil)
	products.On("FindByID", ctx, int64(10)).
		Return(model.Product{ID: 10, Name: "Bamboo Brush", Price: 550, IsActive: true}, nil)
	products.On("FindByID", ctx, int64(11)).
		Return(model.Product{ID: 11, Name: "Hemp Tote", Price: 1200, IsActive: true}, nil)

	cart, err := uc.GetOrCreateCart(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), cart.ID)
	assert.Len(t, cart.Items, 2)
	// Totals use the snapshot price, not the current one.
	assert.Equal(t, int64(2*500+1200), cart.Total)
	assert.Equal(t, int64(3), cart.ItemCount)
	assert.Equal(t, int64(500), cart.Items[0].PriceAtTime)
}

func TestGetOrCreateCart_VanishedProductKeepsSnapshot(t *testing.T) {
	uc, carts, items, products := newCartUsecaseForTest()
	ctx := context.Background()

	carts.On("GetOrCreateByUserID", ctx, int64(7)).
		Return(model.ShoppingCart{ID: 3, UserID: 7}, nil)
	items.On("ListByCartID", ctx, int64(3)).Return([]model.CartItem{
		{ID: 1, CartID: 3, ProductID: 99, Quantity: 1, PriceAtTime: 700},
	}, nil)
	products.On("FindByID", ctx, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	cart, err := uc.GetOrCreateCart(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, "", cart.Items[0].Name)
	assert.Equal(t, int64(700), cart.Items[0].PriceAtTime)
	assert.Equal(t, int64(700), cart.Total)
}

func TestAddItem_SnapshotsCurrentPrice(t *testing.T) {
	uc, carts, items, products := newCartUsecaseForTest()
	ctx := context.Background()

	carts.On("GetOrCreateByUserID", ctx, int64(7)).
		Return(model.ShoppingCart{ID: 3, UserID: 7}, nil)
	products.On("FindByID", ctx, int64(10)).
		Return(model.Product{ID: 10, Name: "Bamboo Brush", Price: 550, IsActive: true}, nil)
	items.On("UpsertByCartAndProduct", ctx, int64(3), int64(10), int64(2), int64(550)).
		Return(nil)
	items.On("ListByCartID", ctx, int64(3)).Return([]model.CartItem{
		{ID: 1, CartID: 3, ProductID: 10, Quantity: 2, PriceAtTime: 550},
	}, nil)

	cart, err := uc.AddItem(ctx, 7, AddCartItemInput{ProductID: 10, Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, int64(1100), cart.Total)
	items.AssertExpectations(t)
}

func TestAddItem_InactiveProductRejected(t *testing.T) {
	uc, carts, _, products := newCartUsecaseForTest()
	ctx := context.Background()

	carts.On("GetOrCreateByUserID", ctx, int64(7)).
		Return(model.ShoppingCart{ID: 3, UserID: 7}, nil)
	products.On("FindByID", ctx, int64(10)).
		Return(model.Product{ID: 10, IsActive: false}, nil)

	_, err := uc.AddItem(ctx, 7, AddCartItemInput{ProductID: 10, Quantity: 1})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestUpdateItemQuantity(t *testing.T) {
	t.Run("negative quantity rejected", func(t *testing.T) {
		uc, _, _, _ := newCartUsecaseForTest()

		_, err := uc.UpdateItemQuantity(context.Background(), 1, -1)

		he, ok := AsHTTPError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	})

	t.Run("zero quantity accepted", func(t *testing.T) {
		uc, _, items, _ := newCartUsecaseForTest()
		ctx := context.Background()

		items.On("UpdateQuantity", ctx, int64(5), int64(0)).Return(nil)
		items.On("FindByID", ctx, int64(5)).
			Return(model.CartItem{ID: 5, Quantity: 0}, nil)

		item, err := uc.UpdateItemQuantity(ctx, 5, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), item.Quantity)
	})

	t.Run("missing item is 404", func(t *testing.T) {
		uc, _, items, _ := newCartUsecaseForTest()
		ctx := context.Background()

		items.On("UpdateQuantity", ctx, int64(5), int64(2)).Return(repo.ErrNotFound)

		_, err := uc.UpdateItemQuantity(ctx, 5, 2)

		he, ok := AsHTTPError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Status)
	})
}

func TestRemoveItem_AbsentRowSucceeds(t *testing.T) {
	uc, _, items, _ := newCartUsecaseForTest()
	ctx := context.Background()

	// The store reports success for a row that was never there.
	items.On("DeleteByID", ctx, int64(42)).Return(nil)

	assert.NoError(t, uc.RemoveItem(ctx, 42))
}

func TestRemoveItem_StoreError(t *testing.T) {
	uc, _, items, _ := newCartUsecaseForTest()
	ctx := context.Background()

	items.On("DeleteByID", ctx, mock.Anything).Return(errors.New("boom"))

	err := uc.RemoveItem(ctx, 42)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestSyncCartMetadata_Placeholders(t *testing.T) {
	uc, _, _, _ := newCartUsecaseForTest()

	meta := uc.SyncCartMetadata(CartMetadataInput{
		CartID: 3,
		Items: []CartMetadataItem{
			{ProductID: 10, Name: "Bamboo Brush", Quantity: 2, PriceAtTime: 500},
			{ProductID: 11, Name: "Hemp Tote", Quantity: 1, PriceAtTime: 1200},
		},
	}, CustomerInfo{})

	assert.Equal(t, "Guest Customer", meta.CustomerName)
	assert.Equal(t, "guest@ecogood.local", meta.CustomerEmail)
	assert.Equal(t, "N/A", meta.CustomerPhone)
	assert.Equal(t, "N/A", meta.CustomerAddress)
	assert.Equal(t, "active", meta.Status)
	assert.Equal(t, int64(2200), meta.TotalAmount)
	assert.Equal(t, int64(3), meta.ItemCount)
}

func TestSyncCartMetadata_KeepsProvidedCustomer(t *testing.T) {
	uc, _, _, _ := newCartUsecaseForTest()

	meta := uc.SyncCartMetadata(CartMetadataInput{CartID: 3}, CustomerInfo{
		Name:  "Mika Tanaka",
		Email: "mika@example.com",
	})

	assert.Equal(t, "Mika Tanaka", meta.CustomerName)
	assert.Equal(t, "mika@example.com", meta.CustomerEmail)
	assert.Equal(t, "N/A", meta.CustomerPhone)
}
