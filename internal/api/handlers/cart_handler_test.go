package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Ifeanyi-M/Sweetopia-Backend/domain"
	"github.com/Ifeanyi-M/Sweetopia-Backend/internal/utils"
)

type fakeCartService struct {
	cart      domain.ShoppingCartResponse
	getErr    error
	upsertErr error

	lastUserID string
	lastItemID uint
	lastDelta  int
}

func (f *fakeCartService) GetCart(ctx context.Context, userID string) (domain.ShoppingCartResponse, error) {
	f.lastUserID = userID
	if f.getErr != nil {
		return domain.ShoppingCartResponse{}, f.getErr
	}
	return f.cart, nil
}

func (f *fakeCartService) AddOrUpdateItem(ctx context.Context, userID string, menuItemID uint, updateQuantityBy int) error {
	f.lastUserID = userID
	f.lastItemID = menuItemID
	f.lastDelta = updateQuantityBy
	return f.upsertErr
}

func newCartTestApp(svc *fakeCartService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewCartHandler(svc, utils.Validate)
	app.Get("/api/cart", handler.GetCart)
	app.Post("/api/cart", handler.AddOrUpdateItem)
	return app
}

func TestGetCart_OK(t *testing.T) {
	svc := &fakeCartService{cart: domain.ShoppingCartResponse{
		ID:        1,
		UserID:    "u1",
		CartTotal: 9.75,
		CartItems: []domain.CartItemResponse{{ID: 1, MenuItemID: 2, Quantity: 3}},
	}}
	app := newCartTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cart?userId=u1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", svc.lastUserID)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.IsSuccess)
	result, ok := envelope.Result.(map[string]interface{})
	if assert.True(t, ok) {
		assert.InDelta(t, 9.75, result["cart_total"], 1e-9)
	}
}

func TestGetCart_ErrorIsBadRequestEnvelope(t *testing.T) {
	app := newCartTestApp(&fakeCartService{getErr: assert.AnError})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cart?userId=u1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.IsSuccess)
	assert.NotEmpty(t, envelope.ErrorMessages)
}

func TestAddOrUpdateItem_QueryParams(t *testing.T) {
	svc := &fakeCartService{}
	app := newCartTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/cart?userId=u1&menuItemId=2&updateQuantityBy=-1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", svc.lastUserID)
	assert.Equal(t, uint(2), svc.lastItemID)
	assert.Equal(t, -1, svc.lastDelta)
}

func TestAddOrUpdateItem_FormBody(t *testing.T) {
	svc := &fakeCartService{}
	app := newCartTestApp(svc)

	form := url.Values{}
	form.Set("userId", "u9")
	form.Set("menuItemId", "4")
	form.Set("updateQuantityBy", "2")

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u9", svc.lastUserID)
	assert.Equal(t, uint(4), svc.lastItemID)
	assert.Equal(t, 2, svc.lastDelta)
}

func TestAddOrUpdateItem_UnresolvedMenuItem(t *testing.T) {
	app := newCartTestApp(&fakeCartService{upsertErr: domain.ErrMenuItemNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/cart?userId=u1&menuItemId=99&updateQuantityBy=1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.IsSuccess)
	assert.Contains(t, envelope.ErrorMessages, domain.ErrMenuItemNotFound.Error())
}

func TestAddOrUpdateItem_MissingParams(t *testing.T) {
	app := newCartTestApp(&fakeCartService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/cart", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
