package routes

import (
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFontRoutes(router *gin.Engine, service *services.FontService) {
	setupResourceRoutes(router.Group("/font"), controllers.NewFontController(service))
}
