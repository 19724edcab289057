package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fomosandwich/sandwich-cart/controllers"
	"github.com/fomosandwich/sandwich-cart/middlewares"
	"github.com/fomosandwich/sandwich-cart/services"
)

func SetupRouter(orderService *services.OrderService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter umum harus terpasang sebelum route didaftarkan;
	// gin meng-snapshot handler chain saat registrasi.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	menuCtrl := controllers.NewMenuController()
	orderCtrl := controllers.NewOrderController(orderService)
	contactCtrl := controllers.NewContactController()

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.GetAllMenu)
		api.GET("/menu/:slug", menuCtrl.GetMenuBySlug)
		api.GET("/contact", contactCtrl.GetContactInfo)

		api.POST("/orders", middlewares.NewOrderSubmitLimiter(), orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	}

	return r
}
