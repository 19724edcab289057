package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fomosandwich/sandwich-cart/models"
	"github.com/fomosandwich/sandwich-cart/utils"
)

type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

type menuItemResponse struct {
	models.MenuItem
	PriceLabel string `json:"priceLabel"`
}

func toMenuItemResponse(item models.MenuItem) menuItemResponse {
	return menuItemResponse{
		MenuItem:   item,
		PriceLabel: utils.FormatCurrencyIDR(item.Price),
	}
}

// GetAllMenu -> list seluruh katalog
func (mc *MenuController) GetAllMenu(c *gin.Context) {
	items := make([]menuItemResponse, 0, len(models.MenuItems))
	for _, item := range models.MenuItems {
		items = append(items, toMenuItemResponse(item))
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuBySlug -> detail 1 item menu
func (mc *MenuController) GetMenuBySlug(c *gin.Context) {
	slug := c.Param("slug")
	item, ok := models.LookupMenuItem(slug)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", toMenuItemResponse(item))
}
