package routes

import (
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFontColorRoutes(router *gin.Engine, service *services.FontColorService) {
	setupResourceRoutes(router.Group("/fontcolor"), controllers.NewFontColorController(service))
}
