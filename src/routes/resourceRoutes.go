package routes

import (
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

func setupResourceRoutes[T any, P services.Keyed[T], In dtos.Input[T]](group *gin.RouterGroup, controller *controllers.ResourceController[T, P, In]) {
	group.GET("", controller.List)
	group.GET("/:id", controller.Get)
	group.POST("", controller.Create)
	group.PUT("/:id", controller.Update)
	group.DELETE("/:id", controller.Delete)
}
