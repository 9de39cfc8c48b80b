package routes

import (
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(router *gin.Engine, service *services.OrderService) {
	orderController := controllers.NewOrderController(service)

	order := router.Group("/order")
	{
		order.GET("", orderController.List)
		order.GET("/export", orderController.Export)
		order.GET("/last", orderController.Last)
		order.GET("/:id", orderController.Get)
		order.POST("", orderController.Create)
		order.PUT("/:id", orderController.Update)
		order.DELETE("/all", orderController.DeleteAll)
		order.DELETE("/:id", orderController.Delete)
	}
}
