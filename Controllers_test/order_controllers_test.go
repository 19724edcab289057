package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fomosandwich/sandwich-cart/controllers"
	"github.com/fomosandwich/sandwich-cart/services"
	"github.com/fomosandwich/sandwich-cart/store"
	"github.com/fomosandwich/sandwich-cart/utils"
)

func setupOrderRouter(mem *store.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderCtrl := controllers.NewOrderController(services.NewOrderService(mem))
	router.POST("/api/orders", orderCtrl.CreateOrder)
	router.GET("/api/orders/:order_id", orderCtrl.GetOrderByID)
	router.POST("/api/orders/:order_id/cancel", orderCtrl.CancelOrder)
	return router
}

func orderPayload(items []map[string]interface{}) map[string]interface{} {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	return map[string]interface{}{
		"name":           "Sari",
		"phone":          "+62 812-3456-7890",
		"items":          items,
		"deliveryMethod": "Delivery",
		"deliveryDate":   tomorrow,
		"deliveryTime":   "12:30",
		"paymentMethod":  "QRIS",
	}
}

func postJSON(router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndTrackOrder(t *testing.T) {
	utils.InitLogger()
	mem := store.NewMemoryStore()
	router := setupOrderRouter(mem)

	payload := orderPayload([]map[string]interface{}{
		{"itemId": "chicken-sandwich", "quantity": 2},
	})
	w := postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "Order created", createResp["message"])
	data := createResp["data"].(map[string]interface{})

	orderID, ok := data["orderId"].(string)
	assert.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{2}[0-9]{3}$`), orderID)
	assert.Equal(t, float64(64000), data["totalPrice"])
	assert.Equal(t, "Pending", data["status"])
	assert.Contains(t, data["qrPayload"], "TOTAL:64000")

	// Tracking pakai kode yang belum disanitasi, boundary yang membersihkan
	req, _ := http.NewRequest("GET", "/api/orders/"+orderID[:2]+"-"+orderID[2:], nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var getResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &getResp))
	getData := getResp["data"].(map[string]interface{})
	assert.Equal(t, orderID, getData["orderId"])
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	utils.InitLogger()
	mem := store.NewMemoryStore()
	router := setupOrderRouter(mem)

	payload := orderPayload([]map[string]interface{}{})
	w := postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mem.Len())
}

func TestCreateOrderRejectsUnknownItem(t *testing.T) {
	utils.InitLogger()
	mem := store.NewMemoryStore()
	router := setupOrderRouter(mem)

	payload := orderPayload([]map[string]interface{}{
		{"itemId": "tuna-sandwich", "quantity": 1},
	})
	w := postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mem.Len())
}

func TestCreateOrderRejectsPastDeliveryDate(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(store.NewMemoryStore())

	payload := orderPayload([]map[string]interface{}{
		{"itemId": "chicken-sandwich", "quantity": 1},
	})
	payload["deliveryDate"] = "2020-01-01"
	w := postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderNotesLengthInRunes(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(store.NewMemoryStore())

	// 300 karakter multibyte masih sah; batasnya karakter, bukan byte
	payload := orderPayload([]map[string]interface{}{
		{"itemId": "chicken-sandwich", "quantity": 1},
	})
	payload["notes"] = strings.Repeat("é", 300)
	w := postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	payload["notes"] = strings.Repeat("a", 301)
	w = postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackOrderNotFound(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(store.NewMemoryStore())

	req, _ := http.NewRequest("GET", "/api/orders/ZZ999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackOrderEmptyAfterSanitize(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(store.NewMemoryStore())

	req, _ := http.NewRequest("GET", "/api/orders/!!", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelOrderTwice(t *testing.T) {
	utils.InitLogger()
	mem := store.NewMemoryStore()
	router := setupOrderRouter(mem)

	payload := orderPayload([]map[string]interface{}{
		{"itemId": "spicy-egg-sandwich", "quantity": 1},
	})
	w := postJSON(router, "/api/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	orderID := createResp["data"].(map[string]interface{})["orderId"].(string)

	// Cancel pertama sukses
	w = postJSON(router, "/api/orders/"+orderID+"/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cancelResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelResp))
	cancelData := cancelResp["data"].(map[string]interface{})
	assert.Equal(t, "Cancelled", cancelData["status"])
	assert.NotEmpty(t, cancelData["cancelledAt"])

	// Cancel kedua ditolak karena sudah bukan Pending
	w = postJSON(router, "/api/orders/"+orderID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelOrderNotFound(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(store.NewMemoryStore())

	w := postJSON(router, "/api/orders/ZZ999/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
