package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/services"
)

func newCartService(carts *mockCartRepo, products *mockProductRepo) services.CartService {
	logger, _ := zap.NewDevelopment()
	return services.NewCartService(carts, products, logger)
}

func strptr(s string) *string { return &s }

func TestCartService_AddItem_NewLine(t *testing.T) {
	userID := uuid.New()
	product := models.Product{
		ID:       uuid.New(),
		Name:     "Pearl Necklace",
		Category: "necklaces",
		Price:    450,
		Images:   []string{"pearl-1.jpg", "pearl-2.jpg"},
	}
	carts := newMockCartRepo()
	svc := newCartService(carts, &mockProductRepo{products: []models.Product{product}})

	item, svcErr := svc.AddItem(context.Background(), userID, &models.AddCartItemRequest{
		ProductID: product.ID,
		Quantity:  2,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, "Pearl Necklace", item.Name)
	assert.Equal(t, "pearl-1.jpg", item.Image)
	assert.Equal(t, 450.0, item.Price)
	assert.Equal(t, 2, item.Quantity)
	assert.Nil(t, item.Size)
	assert.Len(t, carts.items, 1)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	svc := newCartService(newMockCartRepo(), &mockProductRepo{})

	item, svcErr := svc.AddItem(context.Background(), uuid.New(), &models.AddCartItemRequest{
		ProductID: uuid.New(),
		Quantity:  1,
	})

	assert.Nil(t, item)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCartService_AddItem_RingRequiresSize(t *testing.T) {
	ring := models.Product{ID: uuid.New(), Name: "Gold Band", Category: "rings", Price: 900}
	svc := newCartService(newMockCartRepo(), &mockProductRepo{products: []models.Product{ring}})

	_, svcErr := svc.AddItem(context.Background(), uuid.New(), &models.AddCartItemRequest{
		ProductID: ring.ID,
		Quantity:  1,
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Please select a ring size", svcErr.Message)

	// An empty size string is the same as no size.
	_, svcErr = svc.AddItem(context.Background(), uuid.New(), &models.AddCartItemRequest{
		ProductID: ring.ID,
		Quantity:  1,
		Size:      strptr(""),
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)

	item, svcErr := svc.AddItem(context.Background(), uuid.New(), &models.AddCartItemRequest{
		ProductID: ring.ID,
		Quantity:  1,
		Size:      strptr("7"),
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "7", *item.Size)
}

func TestCartService_AddItem_MergesSameProductAndSize(t *testing.T) {
	userID := uuid.New()
	ring := models.Product{ID: uuid.New(), Name: "Gold Band", Category: "rings", Price: 900}
	carts := newMockCartRepo()
	svc := newCartService(carts, &mockProductRepo{products: []models.Product{ring}})

	first, svcErr := svc.AddItem(context.Background(), userID, &models.AddCartItemRequest{
		ProductID: ring.ID, Quantity: 1, Size: strptr("7"),
	})
	assert.Nil(t, svcErr)

	merged, svcErr := svc.AddItem(context.Background(), userID, &models.AddCartItemRequest{
		ProductID: ring.ID, Quantity: 2, Size: strptr("7"),
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)
	assert.Len(t, carts.items, 1)
}

func TestCartService_AddItem_DifferentSizesAreSeparateLines(t *testing.T) {
	userID := uuid.New()
	ring := models.Product{ID: uuid.New(), Name: "Gold Band", Category: "rings", Price: 900}
	carts := newMockCartRepo()
	svc := newCartService(carts, &mockProductRepo{products: []models.Product{ring}})

	_, svcErr := svc.AddItem(context.Background(), userID, &models.AddCartItemRequest{
		ProductID: ring.ID, Quantity: 1, Size: strptr("6"),
	})
	assert.Nil(t, svcErr)

	_, svcErr = svc.AddItem(context.Background(), userID, &models.AddCartItemRequest{
		ProductID: ring.ID, Quantity: 1, Size: strptr("8"),
	})
	assert.Nil(t, svcErr)
	assert.Len(t, carts.items, 2)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	userID := uuid.New()
	carts := newMockCartRepo()
	line := &models.CartItem{ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Quantity: 2}
	_ = carts.Insert(context.Background(), line)

	svc := newCartService(carts, &mockProductRepo{})

	svcErr := svc.UpdateQuantity(context.Background(), userID, line.ID, 0)
	assert.Nil(t, svcErr)
	assert.Empty(t, carts.items)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	svc := newCartService(newMockCartRepo(), &mockProductRepo{})

	svcErr := svc.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 3)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCartService_RemoveItem_OtherUsersLineIsInvisible(t *testing.T) {
	owner := uuid.New()
	carts := newMockCartRepo()
	line := &models.CartItem{ID: uuid.New(), UserID: owner, ProductID: uuid.New(), Quantity: 1}
	_ = carts.Insert(context.Background(), line)

	svc := newCartService(carts, &mockProductRepo{})

	svcErr := svc.RemoveItem(context.Background(), uuid.New(), line.ID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Len(t, carts.items, 1)
}

func TestCartService_GetCart_IncludesSummary(t *testing.T) {
	userID := uuid.New()
	carts := newMockCartRepo()
	_ = carts.Insert(context.Background(), &models.CartItem{
		ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Price: 300, Quantity: 2,
	})

	svc := newCartService(carts, &mockProductRepo{})

	cart, svcErr := svc.GetCart(context.Background(), userID)
	assert.Nil(t, svcErr)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 600.0, cart.Summary.Subtotal)
	assert.Equal(t, 25.0, cart.Summary.Shipping)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.CartItem
		wantSubtotal float64
		wantShipping float64
		wantTax      float64
	}{
		{
			name:         "empty cart still pays shipping",
			items:        nil,
			wantSubtotal: 0,
			wantShipping: 25,
			wantTax:      0,
		},
		{
			name: "below threshold",
			items: []models.CartItem{
				{Price: 200, Quantity: 2},
			},
			wantSubtotal: 400,
			wantShipping: 25,
			wantTax:      32,
		},
		{
			name: "exactly at threshold still pays shipping",
			items: []models.CartItem{
				{Price: 500, Quantity: 2},
			},
			wantSubtotal: 1000,
			wantShipping: 25,
			wantTax:      80,
		},
		{
			name: "above threshold ships free",
			items: []models.CartItem{
				{Price: 600, Quantity: 2},
			},
			wantSubtotal: 1200,
			wantShipping: 0,
			wantTax:      96,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.Summarize(tt.items)
			assert.InDelta(t, tt.wantSubtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantShipping, got.Shipping, 1e-9)
			assert.InDelta(t, tt.wantTax, got.Tax, 1e-9)
			assert.InDelta(t, tt.wantSubtotal+tt.wantShipping+tt.wantTax, got.Total, 1e-9)
		})
	}
}
