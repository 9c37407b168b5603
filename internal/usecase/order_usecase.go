package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

// OrdersBlobKey is the fixed key of the order collection snapshot.
const OrdersBlobKey = "orders.json"

// OrderWithItems is an order plus its line items, the shape stored in
// the blob snapshot and returned to callers.
type OrderWithItems struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

// OrderSnapshot is the whole order collection as one blob. Version is
// bumped on every write; the blob store has no compare-and-swap, so the
// stamp marks staleness for readers rather than preventing lost updates.
type OrderSnapshot struct {
	Version int64            `json:"version"`
	Orders  []OrderWithItems `json:"orders"`
}

// OrderUsecase owns order listing and payment-status transitions.
type OrderUsecase struct {
	tx     repo.TransactionManager
	blob   repo.BlobStore
	logger *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, blob repo.BlobStore, logger *zap.Logger) *OrderUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUsecase{tx: tx, blob: blob, logger: logger}
}

// CartOrderView is the admin cart-tracking row. Status collapses every
// non-pending order into "abandoned"; only "pending" shows as "active".
type CartOrderView struct {
	ID            int64             `json:"id"`
	OrderNumber   string            `json:"order_number"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerPhone string            `json:"customerPhone"`
	Items         []model.OrderItem `json:"items"`
	TotalAmount   int64             `json:"totalAmount"`
	Date          time.Time         `json:"date"`
	Status        string            `json:"status"`
}

// ListCartOrders returns every order with its items, newest first,
// mapped to the simplified admin cart-tracking label.
func (u *OrderUsecase) ListCartOrders(ctx context.Context) ([]CartOrderView, error) {
	var views []CartOrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAll(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		views = make([]CartOrderView, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			views = append(views, CartOrderView{
				ID:            o.ID,
				OrderNumber:   o.OrderNumber,
				CustomerName:  o.CustomerName,
				CustomerEmail: o.CustomerEmail,
				CustomerPhone: o.CustomerPhone,
				Items:         items,
				TotalAmount:   o.TotalAmount,
				Date:          o.CreatedAt,
				Status:        cartTrackingStatus(o.OrderStatus),
			})
		}
		return nil
	})

	if err != nil {
		return []CartOrderView{}, err
	}
	return views, nil
}

// cartTrackingStatus collapses confirmed/processing/shipped/cancelled
// into one "abandoned" bucket for the admin view.
func cartTrackingStatus(s model.OrderStatus) string {
	if s == model.OrderStatusPending {
		return "active"
	}
	return "abandoned"
}

type ConfirmPaymentInput struct {
	OrderID       string
	PaymentMethod string
	Status        string
}

// ConfirmPayment rewrites the payment fields of one order inside the
// blob snapshot. The whole collection is read, mutated and written
// back; concurrent confirmations race on the same key and the last
// writer wins.
func (u *OrderUsecase) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (OrderWithItems, error) {
	switch model.PaymentMethod(in.PaymentMethod) {
	case model.PaymentMethodBankTransfer, model.PaymentMethodCOD:
	default:
		return OrderWithItems{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}
	switch model.PaymentStatus(in.Status) {
	case model.PaymentStatusPending, model.PaymentStatusConfirmed, model.PaymentStatusFailed:
	default:
		return OrderWithItems{}, NewHTTPError(http.StatusBadRequest, "invalid payment status")
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return OrderWithItems{}, NewHTTPError(http.StatusBadRequest, "orderId is required")
	}

	snapshot, err := u.loadSnapshot(ctx)
	if err != nil {
		return OrderWithItems{}, err
	}

	// First match by order number or id wins.
	idx := -1
	for i, o := range snapshot.Orders {
		if o.OrderNumber == in.OrderID || strconv.FormatInt(o.ID, 10) == in.OrderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return OrderWithItems{}, NewHTTPError(http.StatusNotFound, "order not found")
	}

	order := &snapshot.Orders[idx]
	order.PaymentStatus = model.PaymentStatus(in.Status)
	order.PaymentMethod = model.PaymentMethod(in.PaymentMethod)
	if order.PaymentStatus == model.PaymentStatusConfirmed {
		order.OrderStatus = model.OrderStatusProcessing
	} else {
		// "failed" is not distinguished from "pending" here.
		order.OrderStatus = model.OrderStatusPending
	}
	order.UpdatedAt = time.Now()

	snapshot.Version++

	if err := u.saveSnapshot(ctx, snapshot); err != nil {
		return OrderWithItems{}, err
	}

	return *order, nil
}

type CheckoutInput struct {
	Customer      CustomerInfo
	PaymentMethod string
}

// Checkout turns the user's cart into an order: item snapshots, total,
// pending payment, cart cleared. The order is also appended to the
// blob snapshot so payment confirmation can find it.
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (OrderWithItems, error) {
	if userID <= 0 {
		return OrderWithItems{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	switch model.PaymentMethod(in.PaymentMethod) {
	case model.PaymentMethodBankTransfer, model.PaymentMethodCOD:
	default:
		return OrderWithItems{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		return OrderWithItems{}, NewHTTPError(http.StatusBadRequest, "customer name is required")
	}

	var out OrderWithItems

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		now := time.Now()
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total int64

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "invalid product in cart")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:   ci.ProductID,
				ProductName: p.Name,
				Quantity:    ci.Quantity,
				Price:       ci.PriceAtTime,
				CreatedAt:   now,
			})
			total += ci.PriceAtTime * ci.Quantity
		}

		order := model.Order{
			OrderNumber:     newOrderNumber(),
			CustomerName:    in.Customer.Name,
			CustomerEmail:   in.Customer.Email,
			CustomerPhone:   in.Customer.Phone,
			CustomerAddress: in.Customer.Address,
			TotalAmount:     total,
			PaymentMethod:   model.PaymentMethod(in.PaymentMethod),
			PaymentStatus:   model.PaymentStatusPending,
			OrderStatus:     model.OrderStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = OrderWithItems{Order: order, Items: orderItems}
		return nil
	})

	if err != nil {
		return OrderWithItems{}, err
	}

	// Best effort: a failed snapshot append only degrades the admin
	// view; the relational order already exists.
	if err := u.appendToSnapshot(ctx, out); err != nil {
		u.logger.Warn("order snapshot append failed",
			zap.String("order_number", out.OrderNumber),
			zap.Error(err),
		)
	}

	return out, nil
}

func (u *OrderUsecase) loadSnapshot(ctx context.Context) (OrderSnapshot, error) {
	data, err := u.blob.Load(ctx, OrdersBlobKey)
	if errors.Is(err, repo.ErrBlobTimeout) {
		return OrderSnapshot{}, NewHTTPError(http.StatusGatewayTimeout, "timeout")
	}
	if errors.Is(err, repo.ErrBlobNotFound) {
		// No snapshot yet means no orders to match.
		return OrderSnapshot{}, nil
	}
	if err != nil {
		return OrderSnapshot{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	var snapshot OrderSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return OrderSnapshot{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return snapshot, nil
}

func (u *OrderUsecase) saveSnapshot(ctx context.Context, snapshot OrderSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}

	err = u.blob.Save(ctx, OrdersBlobKey, data)
	if errors.Is(err, repo.ErrBlobTimeout) {
		return NewHTTPError(http.StatusGatewayTimeout, "timeout")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return nil
}

func (u *OrderUsecase) appendToSnapshot(ctx context.Context, order OrderWithItems) error {
	snapshot, err := u.loadSnapshot(ctx)
	if err != nil {
		return err
	}

	snapshot.Orders = append(snapshot.Orders, order)
	snapshot.Version++

	return u.saveSnapshot(ctx, snapshot)
}

func newOrderNumber() string {
	return "EG-" + strings.ToUpper(uuid.NewString()[:8])
}
