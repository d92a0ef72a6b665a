package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/controllers"
	"github.com/axrasp/start-burger/middlewares"
	"github.com/axrasp/start-burger/services"
)

func SetupRouter(db *gorm.DB, matcher *services.MatcherService, menu *services.MenuIndex, events *services.OrderEventPublisher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())

	userCtrl := controllers.NewUserController(db)
	productCtrl := controllers.NewProductController(db, menu)
	orderCtrl := controllers.NewOrderController(db, events)
	restaurateurCtrl := controllers.NewRestaurateurController(db, matcher)

	api := r.Group("/api")
	{
		api.GET("/banners", productCtrl.GetBanners)
		api.GET("/products", productCtrl.GetProducts)
		api.POST("/order", orderCtrl.RegisterOrder)

		auth := api.Group("/auth")
		{
			auth.POST("/register", userCtrl.Register)
			auth.POST("/login", userCtrl.Login)
		}

		manager := api.Group("/manager")
		manager.Use(middlewares.AuthMiddleware(), middlewares.ManagerOnly())
		{
			manager.GET("/orders", restaurateurCtrl.GetOrderBoard)
			manager.GET("/orders/all", orderCtrl.GetAllOrders)
			manager.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)
		}
	}

	return r
}
