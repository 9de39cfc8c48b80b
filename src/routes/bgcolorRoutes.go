package routes

import (
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBgColorRoutes(router *gin.Engine, service *services.BgColorService) {
	setupResourceRoutes(router.Group("/bgcolor"), controllers.NewBgColorController(service))
}
