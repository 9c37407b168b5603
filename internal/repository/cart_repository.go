package repository

import (
	"context"

	"ecogood/internal/domain/model"
)

type CartRepository interface {
	// Finds the user's cart, creating it on first access.
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.ShoppingCart, error)
	FindByUserID(ctx context.Context, userID int64) (model.ShoppingCart, error)
	Clear(ctx context.Context, cartID int64) error
}

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// Same product in the same cart adds to the existing quantity.
	UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64, priceAtTime int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	// Deleting a row that does not exist is not an error.
	DeleteByID(ctx context.Context, cartItemID int64) error
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
}
