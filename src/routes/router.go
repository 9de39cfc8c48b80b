package routes

import (
	"time"

	_ "github.com/baetin/monsfer-api/docs"
	"github.com/baetin/monsfer-api/src/config"
	"github.com/baetin/monsfer-api/src/controllers"
	"github.com/baetin/monsfer-api/src/middleware"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles one service per resource, all sharing the same connection pool.
type Services struct {
	Artwork   *services.ArtworkService
	BgColor   *services.BgColorService
	Font      *services.FontService
	FontColor *services.FontColorService
	Order     *services.OrderService
}

func NewServices(db *gorm.DB, queryTimeout time.Duration) Services {
	return Services{
		Artwork:   services.NewArtworkService(db, queryTimeout),
		BgColor:   services.NewBgColorService(db, queryTimeout),
		Font:      services.NewFontService(db, queryTimeout),
		FontColor: services.NewFontColorService(db, queryTimeout),
		Order:     services.NewOrderService(db, queryTimeout),
	}
}

func NewRouter(cfg *config.Config, log zerolog.Logger, store sessions.Store, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SetupCORS(cfg.AllowedOrigins))
	router.Use(middleware.Sessions(cfg.SessionName, store))

	// Swagger UI
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", controllers.Health)

	SetupArtworkRoutes(router, svc.Artwork)
	SetupBgColorRoutes(router, svc.BgColor)
	SetupFontRoutes(router, svc.Font)
	SetupFontColorRoutes(router, svc.FontColor)
	SetupOrderRoutes(router, svc.Order)

	return router
}
