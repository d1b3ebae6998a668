package services_test

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/solvera/storefront-api/models"
)

var errRepo = errors.New("repository failure")

// --- Product repository ---

type mockProductRepo struct {
	products []models.Product
	err      error
	findAlls int
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	m.findAlls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// --- User repository ---

type mockUserRepo struct {
	users   map[uuid.UUID]*models.User
	updates map[string]interface{}
	err     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	m.updates = updates
	return nil
}

// --- Cart repository ---

type mockCartRepo struct {
	items map[uuid.UUID]*models.CartItem
	err   error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[uuid.UUID]*models.CartItem)}
}

func (m *mockCartRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.CartItem
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *mockCartRepo) FindByProductAndSize(_ context.Context, userID, productID uuid.UUID, size *string) (*models.CartItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, it := range m.items {
		if it.UserID == userID && it.ProductID == productID && sameSize(it.Size, size) {
			clone := *it
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockCartRepo) FindByID(_ context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	it, ok := m.items[itemID]
	if !ok || it.UserID != userID {
		return nil, nil
	}
	clone := *it
	return &clone, nil
}

func (m *mockCartRepo) Insert(_ context.Context, item *models.CartItem) error {
	if m.err != nil {
		return m.err
	}
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *mockCartRepo) UpdateQuantity(_ context.Context, userID, itemID uuid.UUID, quantity int) error {
	if m.err != nil {
		return m.err
	}
	it, ok := m.items[itemID]
	if !ok || it.UserID != userID {
		return errRepo
	}
	it.Quantity = quantity
	return nil
}

func (m *mockCartRepo) Delete(_ context.Context, userID, itemID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.items, itemID)
	return nil
}

func (m *mockCartRepo) DeleteAll(_ context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for id, it := range m.items {
		if it.UserID == userID {
			delete(m.items, id)
		}
	}
	return nil
}

func sameSize(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// --- Wishlist repository ---

type mockWishlistRepo struct {
	items map[uuid.UUID]*models.WishlistItem
	err   error
}

func newMockWishlistRepo() *mockWishlistRepo {
	return &mockWishlistRepo{items: make(map[uuid.UUID]*models.WishlistItem)}
}

func (m *mockWishlistRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.WishlistItem
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *mockWishlistRepo) FindByProduct(_ context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, it := range m.items {
		if it.UserID == userID && it.ProductID == productID {
			clone := *it
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockWishlistRepo) FindByID(_ context.Context, userID, itemID uuid.UUID) (*models.WishlistItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	it, ok := m.items[itemID]
	if !ok || it.UserID != userID {
		return nil, nil
	}
	clone := *it
	return &clone, nil
}

func (m *mockWishlistRepo) Insert(_ context.Context, item *models.WishlistItem) error {
	if m.err != nil {
		return m.err
	}
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *mockWishlistRepo) Delete(_ context.Context, userID, itemID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.items, itemID)
	return nil
}

// --- Order repository ---

type mockOrderRepo struct {
	orders []models.Order
	err    error
}

func (m *mockOrderRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.orders {
		if m.orders[i].ID == orderID && m.orders[i].UserID == userID {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// --- Product list cache ---

type mockCache struct {
	products []models.Product
	hit      bool
	sets     int
}

func (m *mockCache) Get(_ context.Context) ([]models.Product, bool) {
	if !m.hit {
		return nil, false
	}
	return m.products, true
}

func (m *mockCache) SetAsync(products []models.Product) {
	m.products = products
	m.sets++
}
