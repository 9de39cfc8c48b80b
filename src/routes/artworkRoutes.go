package routes

import (
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

func SetupArtworkRoutes(router *gin.Engine, service *services.ArtworkService) {
	setupResourceRoutes(router.Group("/artwork"), controllers.NewArtworkController(service))
}
