package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/fomosandwich/sandwich-cart/models"
	"github.com/fomosandwich/sandwich-cart/services"
	"github.com/fomosandwich/sandwich-cart/utils"
)

const (
	maxOrderItems   = 10
	maxItemQuantity = 20
	maxNotesLength  = 300
)

var (
	phonePattern      = regexp.MustCompile(`^[0-9+\- ]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// validateOrderInput melakukan validasi bentuk di boundary. Order service
// tetap memvalidasi ulang invariant yang menyangkut uang dan identitas.
func validateOrderInput(input *models.OrderInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fmt.Errorf("name is required")
	}

	input.Phone = strings.TrimSpace(whitespacePattern.ReplaceAllString(input.Phone, " "))
	if input.Phone == "" || !phonePattern.MatchString(input.Phone) {
		return fmt.Errorf("phone may only contain digits, spaces, dashes, and plus signs")
	}

	if len(input.Items) == 0 {
		return fmt.Errorf("please select at least one sandwich to order")
	}
	if len(input.Items) > maxOrderItems {
		return fmt.Errorf("an order may contain at most %d items", maxOrderItems)
	}
	for _, item := range input.Items {
		if item.ItemID == "" {
			return fmt.Errorf("itemId is required for every item")
		}
		if item.Quantity < 1 || item.Quantity > maxItemQuantity {
			return fmt.Errorf("quantity must be between 1 and %d", maxItemQuantity)
		}
	}

	switch input.DeliveryMethod {
	case models.DeliveryMethodDelivery, models.DeliveryMethodPickup:
	default:
		return fmt.Errorf("deliveryMethod must be Delivery or Pickup")
	}

	deliveryDate, err := time.Parse("2006-01-02", input.DeliveryDate)
	if err != nil {
		return fmt.Errorf("deliveryDate must be in YYYY-MM-DD format")
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if deliveryDate.Before(today) {
		return fmt.Errorf("deliveryDate must be today or later")
	}

	if input.DeliveryTime != "" {
		if _, err := time.Parse("15:04", input.DeliveryTime); err != nil {
			return fmt.Errorf("deliveryTime must be in HH:mm format")
		}
	}

	switch input.PaymentMethod {
	case models.PaymentMethodQRIS, models.PaymentMethodCOD:
	default:
		return fmt.Errorf("paymentMethod must be QRIS or COD")
	}

	input.Notes = strings.TrimSpace(input.Notes)
	if utf8.RuneCountInString(input.Notes) > maxNotesLength {
		return fmt.Errorf("notes may contain at most %d characters", maxNotesLength)
	}

	return nil
}

// CreateOrder -> buat order baru (status=Pending)
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := validateOrderInput(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, statusForOrderError(err), err)
		return
	}

	utils.InfoLogger.Printf("Order %s created, total %s", order.OrderID, utils.FormatCurrencyIDR(order.TotalPrice))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> tracking 1 order berdasarkan kode
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := utils.SanitizeOrderID(c.Param("order_id"))
	if orderID == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("order number is required"))
		return
	}

	order, ok, err := oc.Service.GetByID(c.Request.Context(), orderID)
	if err != nil {
		utils.RespondError(c, statusForOrderError(err), err)
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CancelOrder -> batalkan order selama masih Pending
func (oc *OrderController) CancelOrder(c *gin.Context) {
	orderID := utils.SanitizeOrderID(c.Param("order_id"))
	if orderID == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("order number is required"))
		return
	}

	order, err := oc.Service.Cancel(c.Request.Context(), orderID)
	if err != nil {
		utils.RespondError(c, statusForOrderError(err), err)
		return
	}

	utils.InfoLogger.Printf("Order %s cancelled", order.OrderID)
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// statusForOrderError memetakan taksonomi error service ke kode HTTP.
func statusForOrderError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrUnknownItem):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotCancellable):
		return http.StatusConflict
	case errors.Is(err, services.ErrIDExhausted), errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
