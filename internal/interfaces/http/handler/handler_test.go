package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderapp "github.com/KishoreVB70/icp-marketplace/internal/application/order"
	productapp "github.com/KishoreVB70/icp-marketplace/internal/application/product"
	ledgerdomain "github.com/KishoreVB70/icp-marketplace/internal/domain/ledger"
	"github.com/KishoreVB70/icp-marketplace/internal/infrastructure/persistence/memory"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/handler"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/middleware"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/router"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

type stubTransfer struct {
	err error
}

func (s *stubTransfer) Transfer(ctx context.Context, from, to string, amount uint64) (*ledgerdomain.Receipt, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ledgerdomain.Receipt{BlockIndex: 7}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field)               {}
func (nopLogger) Info(string, ...logger.Field)                {}
func (nopLogger) Warn(string, ...logger.Field)                {}
func (nopLogger) Error(string, ...logger.Field)               {}
func (nopLogger) Fatal(string, ...logger.Field)               {}
func (n nopLogger) WithContext(context.Context) logger.Logger { return n }
func (n nopLogger) WithFields(...logger.Field) logger.Logger  { return n }
func (nopLogger) Sync() error                                 { return nil }

func newTestEngine(t *testing.T, transfer *stubTransfer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()

	productSvc := productapp.NewService(products)
	orderSvc := orderapp.NewService(products, orders, transfer, nil, nopLogger{})

	engine := gin.New()
	router.RegisterRoutes(
		engine,
		handler.NewProductHandler(productSvc),
		handler.NewOrderHandler(orderSvc),
		handler.NewAddressHandler(),
	)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, caller string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(middleware.CallerHeader, caller)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func createTestProduct(t *testing.T, engine *gin.Engine, seller string, price uint64) map[string]interface{} {
	t.Helper()

	rec := doJSON(t, engine, http.MethodPost, "/api/products", seller, map[string]interface{}{
		"title": "lamp",
		"price": price,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var p map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestCreateProduct_SellerIsCaller(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	p := createTestProduct(t, engine, "abcd01", 500)

	assert.Equal(t, "abcd01", p["seller"])
	assert.Equal(t, float64(0), p["soldAmount"])
	assert.NotEmpty(t, p["id"])
}

func TestCreateProduct_AnonymousWithoutHeader(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	p := createTestProduct(t, engine, "", 500)

	assert.Equal(t, "04", p["seller"])
}

func TestGetProduct_NotFound(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	rec := doJSON(t, engine, http.MethodGet, "/api/products/xyz", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestUpdateProduct_PartialPatch(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})
	p := createTestProduct(t, engine, "abcd01", 500)
	id := p["id"].(string)

	rec := doJSON(t, engine, http.MethodPut, "/api/products/"+id, "abcd01", map[string]interface{}{
		"price": 650,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, float64(650), updated["price"])
	assert.Equal(t, "lamp", updated["title"])
}

func TestUpdateProduct_NotFound(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	rec := doJSON(t, engine, http.MethodPut, "/api/products/xyz", "", map[string]interface{}{"price": 1})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_ReturnsPriorValue(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})
	p := createTestProduct(t, engine, "abcd01", 500)
	id := p["id"].(string)

	rec := doJSON(t, engine, http.MethodDelete, "/api/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lamp")

	rec = doJSON(t, engine, http.MethodDelete, "/api/products/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})
	p := createTestProduct(t, engine, "seller-principal", 500)
	id := p["id"].(string)

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", "buyer-principal", map[string]interface{}{
		"productId": id,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var o map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, id, o["productId"])
	assert.Equal(t, float64(500), o["price"])
	assert.Equal(t, "Completed", o["status"])
	assert.Equal(t, "seller-principal", o["seller"])
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", "buyer", map[string]interface{}{
		"productId": "xyz",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_TransferErrorSurfaced(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{err: ledgerdomain.NewTransferError("insufficient allowance")})
	p := createTestProduct(t, engine, "seller", 500)

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", "buyer", map[string]interface{}{
		"productId": p["id"].(string),
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient allowance")

	// The failed attempt left no order behind.
	list := doJSON(t, engine, http.MethodGet, "/api/orders", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Equal(t, "[]", list.Body.String())
}

func TestCreateOrder_MissingProductID(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", "buyer", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrincipalToAddress(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	rec := doJSON(t, engine, http.MethodGet, "/api/principal-to-address/04", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1c7a48ba6a562aa9eaa2481a9049cdf0433b9738c992d698c31d8abf89cadc79", body["account"])
}

func TestPrincipalToAddress_Invalid(t *testing.T) {
	engine := newTestEngine(t, &stubTransfer{})

	rec := doJSON(t, engine, http.MethodGet, "/api/principal-to-address/zz", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
