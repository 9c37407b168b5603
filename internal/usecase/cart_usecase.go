package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

// CartUsecase owns cart retrieval, lazy cart creation, line-item
// mutation and the cart-to-order metadata snapshot.
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// CartItemDetail is a cart line joined with its product's display fields.
type CartItemDetail struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Quantity    int64  `json:"quantity"`
	PriceAtTime int64  `json:"price_at_time"`
}

type CartDetail struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Items     []CartItemDetail `json:"items"`
	Total     int64            `json:"total"`
	ItemCount int64            `json:"item_count"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// GetOrCreateCart returns the user's cart, creating it on first access.
func (u *CartUsecase) GetOrCreateCart(ctx context.Context, userID int64) (CartDetail, error) {
	if userID <= 0 {
		return CartDetail{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartDetail(ctx, cart)
}

type AddCartItemInput struct {
	ProductID int64
	Quantity  int64
}

// AddItem puts a product into the user's cart; the same product adds
// to the existing quantity. The price is snapshotted at add time.
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartItemInput) (CartDetail, error) {
	if userID <= 0 {
		return CartDetail{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartDetail{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartDetail{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartDetail{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartDetail{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	if err := u.cartItemRepo.UpsertByCartAndProduct(ctx, cart.ID, in.ProductID, in.Quantity, p.Price); err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartDetail(ctx, cart)
}

// UpdateItemQuantity overwrites the quantity for the given item.
// Any caller may alter any item by id; there is no ownership check.
func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int64) (model.CartItem, error) {
	if itemID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if quantity < 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	err := u.cartItemRepo.UpdateQuantity(ctx, itemID, quantity)
	if errors.Is(err, repo.ErrNotFound) {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.FindByID(ctx, itemID)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return item, nil
}

// RemoveItem deletes the line. Removing an item that is already gone
// succeeds; the caller asked for an absent row and got one.
func (u *CartUsecase) RemoveItem(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, itemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

type CartMetadataItem struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	PriceAtTime int64  `json:"price_at_time"`
}

type CartMetadataInput struct {
	CartID int64              `json:"cart_id"`
	Items  []CartMetadataItem `json:"items"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CartMetadata is the denormalized snapshot shown on the admin side.
type CartMetadata struct {
	CartID          int64     `json:"cart_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerAddress string    `json:"customer_address"`
	TotalAmount     int64     `json:"total_amount"`
	ItemCount       int64     `json:"item_count"`
	Status          string    `json:"status"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SyncCartMetadata builds the snapshot for administrative visibility.
// Missing customer fields fall back to placeholders. The snapshot is
// computed only; nothing is persisted yet.
func (u *CartUsecase) SyncCartMetadata(cartData CartMetadataInput, customer CustomerInfo) CartMetadata {
	meta := CartMetadata{
		CartID:          cartData.CartID,
		CustomerName:    defaultString(customer.Name, "Guest Customer"),
		CustomerEmail:   defaultString(customer.Email, "guest@ecogood.local"),
		CustomerPhone:   defaultString(customer.Phone, "N/A"),
		CustomerAddress: defaultString(customer.Address, "N/A"),
		Status:          "active",
		UpdatedAt:       time.Now(),
	}

	for _, it := range cartData.Items {
		meta.TotalAmount += it.PriceAtTime * it.Quantity
		meta.ItemCount += it.Quantity
	}

	return meta
}

func (u *CartUsecase) buildCartDetail(ctx context.Context, cart model.ShoppingCart) (CartDetail, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	detail := CartDetail{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     make([]CartItemDetail, 0, len(items)),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			// The product vanished; the line still shows its snapshot price.
			p = model.Product{ID: it.ProductID}
		}

		detail.Items = append(detail.Items, CartItemDetail{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Name:        p.Name,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime,
		})

		detail.Total += it.PriceAtTime * it.Quantity
		detail.ItemCount += it.Quantity
	}

	return detail, nil
}

func defaultString(v string, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
