package catalog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shelfd/feature/catalog"
	"shelfd/feature/catalog/models"
	"shelfd/feature/catalog/remote/mocks"
)

func setupApp(t *testing.T, api *mocks.API, seed []models.Book) *fiber.App {
	t.Helper()

	store := catalog.NewStore(nil, "")
	store.Hydrate(seed)
	engine := catalog.NewEngine(store, api, catalog.NopNotifier{}, catalog.Policy{MergeServerFields: true}, zap.NewNop())
	svc := catalog.NewService(engine, zap.NewNop())
	h := catalog.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func decodeBook(t *testing.T, body io.Reader) models.Book {
	t.Helper()
	var b models.Book
	require.NoError(t, json.NewDecoder(body).Decode(&b))
	return b
}

func TestHandleList(t *testing.T) {
	app := setupApp(t, new(mocks.API), []models.Book{
		{ID: 2, Title: "Second"},
		{ID: 1, Title: "First"},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/books/", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var books []models.Book
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&books))
	require.Len(t, books, 2)
	assert.Equal(t, 2, books[0].ID)
}

func TestHandleGet(t *testing.T) {
	app := setupApp(t, new(mocks.API), []models.Book{{ID: 5, Title: "Dune"}})

	resp, err := app.Test(httptest.NewRequest("GET", "/books/5", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dune", decodeBook(t, resp.Body).Title)

	resp, err = app.Test(httptest.NewRequest("GET", "/books/99", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleCreate(t *testing.T) {
	api := new(mocks.API)
	api.On("Create", mock.Anything, mock.Anything).
		Return(map[string]any{"id": float64(42), "title": "Dune"}, nil)

	app := setupApp(t, api, nil)

	body := bytes.NewBufferString(`{"title":"Dune","author":"Frank Herbert"}`)
	req := httptest.NewRequest("POST", "/books/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 42, decodeBook(t, resp.Body).ID)
}

func TestHandleCreateValidation(t *testing.T) {
	app := setupApp(t, new(mocks.API), nil)

	body := bytes.NewBufferString(`{"title":"ab"}`)
	req := httptest.NewRequest("POST", "/books/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreateRemoteFailure(t *testing.T) {
	api := new(mocks.API)
	api.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("connection refused"))

	app := setupApp(t, api, nil)

	body := bytes.NewBufferString(`{"title":"Dune"}`)
	req := httptest.NewRequest("POST", "/books/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	// Plain errors without a NetworkError wrapper fall through to 500;
	// the store is rolled back either way.
	assert.GreaterOrEqual(t, resp.StatusCode, 500)
}

func TestHandleUpdate(t *testing.T) {
	api := new(mocks.API)
	api.On("Update", mock.Anything, 5, mock.Anything).
		Return(map[string]any{"id": float64(5), "title": "Dune Messiah"}, nil)

	app := setupApp(t, api, []models.Book{{ID: 5, Title: "Dune"}})

	body := bytes.NewBufferString(`{"title":"Dune Messiah"}`)
	req := httptest.NewRequest("PUT", "/books/5", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dune Messiah", decodeBook(t, resp.Body).Title)
}

func TestHandleUpdateEmptyPatch(t *testing.T) {
	app := setupApp(t, new(mocks.API), []models.Book{{ID: 5, Title: "Dune"}})

	req := httptest.NewRequest("PUT", "/books/5", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	api := new(mocks.API)
	api.On("Delete", mock.Anything, 5).Return(nil)

	app := setupApp(t, api, []models.Book{{ID: 5, Title: "Dune"}})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/books/5", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/books/5", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
