package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fomosandwich/sandwich-cart/controllers"
	"github.com/fomosandwich/sandwich-cart/models"
	"github.com/fomosandwich/sandwich-cart/utils"
)

func setupMenuRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	menuCtrl := controllers.NewMenuController()
	router.GET("/api/menu", menuCtrl.GetAllMenu)
	router.GET("/api/menu/:slug", menuCtrl.GetMenuBySlug)
	return router
}

func TestGetAllMenu(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter()

	req, _ := http.NewRequest("GET", "/api/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, len(models.MenuItems))

	first := items[0].(map[string]interface{})
	assert.Equal(t, "chicken-sandwich", first["id"])
	assert.Equal(t, float64(32000), first["price"])
	assert.Equal(t, "Rp 32.000", first["priceLabel"])
}

func TestGetMenuBySlug(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter()

	req, _ := http.NewRequest("GET", "/api/menu/fruity-sandwich", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Fruity Sandwich", data["name"])
	assert.Equal(t, "Rp 30.000", data["priceLabel"])
}

func TestGetMenuBySlugNotFound(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter()

	req, _ := http.NewRequest("GET", "/api/menu/tuna-sandwich", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
