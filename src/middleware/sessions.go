package middleware

import (
	"github.com/baetin/monsfer-api/src/config"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionMaxAge = 24 * 60 * 60

// NewSessionStore keeps sessions in the application database, in a sessions
// table managed by the store itself. Expired rows are purged periodically.
func NewSessionStore(db *gorm.DB, cfg *config.Config) sessions.Store {
	store := gormsessions.NewStore(db, true, []byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
	})
	return store
}

func Sessions(name string, store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(name, store)
}
