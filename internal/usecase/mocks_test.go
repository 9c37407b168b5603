package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockProductRepo) CreateBulk(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) GetOrCreateByUserID(ctx context.Context, userID int64) (model.ShoppingCart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ShoppingCart), args.Error(1)
}

func (m *mockCartRepo) FindByUserID(ctx context.Context, userID int64) (model.ShoppingCart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ShoppingCart), args.Error(1)
}

func (m *mockCartRepo) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type mockCartItemRepo struct {
	mock.Mock
}

func (m *mockCartItemRepo) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *mockCartItemRepo) UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64, priceAtTime int64) error {
	args := m.Called(ctx, cartID, productID, addQty, priceAtTime)
	return args.Error(0)
}

func (m *mockCartItemRepo) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *mockCartItemRepo) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *mockCartItemRepo) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	return args.Get(0).(model.CartItem), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *mockOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderItemRepo struct {
	mock.Mock
}

func (m *mockOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *mockOrderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

type mockBlogPostRepo struct {
	mock.Mock
}

func (m *mockBlogPostRepo) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *mockBlogPostRepo) FindByID(ctx context.Context, id int64) (model.BlogPost, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *mockBlogPostRepo) Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *mockBlogPostRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBlogPostRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockBlogPostRepo) CreateBulk(ctx context.Context, posts []model.BlogPost) error {
	args := m.Called(ctx, posts)
	return args.Error(0)
}

type mockAuditLogRepo struct {
	mock.Mock
}

func (m *mockAuditLogRepo) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockAuditLogRepo) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.AuditLog), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) Save(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *mockBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// fakeTxRepos hands the usecase the same mocks the test configured,
// skipping real transaction scoping.
type fakeTxRepos struct {
	orders     *mockOrderRepo
	orderItems *mockOrderItemRepo
	carts      *mockCartRepo
	cartItems  *mockCartItemRepo
	products   *mockProductRepo
	posts      *mockBlogPostRepo
}

func (f *fakeTxRepos) Orders() repo.OrderRepository         { return f.orders }
func (f *fakeTxRepos) OrderItems() repo.OrderItemRepository { return f.orderItems }
func (f *fakeTxRepos) Carts() repo.CartRepository           { return f.carts }
func (f *fakeTxRepos) CartItems() repo.CartItemRepository   { return f.cartItems }
func (f *fakeTxRepos) Products() repo.ProductRepository     { return f.products }
func (f *fakeTxRepos) Posts() repo.BlogPostRepository       { return f.posts }

type fakeTxManager struct {
	repos *fakeTxRepos
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f.repos)
}

func newFakeTx() (*fakeTxManager, *fakeTxRepos) {
	repos := &fakeTxRepos{
		orders:     new(mockOrderRepo),
		orderItems: new(mockOrderItemRepo),
		carts:      new(mockCartRepo),
		cartItems:  new(mockCartItemRepo),
		products:   new(mockProductRepo),
		posts:      new(mockBlogPostRepo),
	}
	return &fakeTxManager{repos: repos}, repos
}
