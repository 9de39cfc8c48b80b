package controllers

import (
	"errors"
	"net/http"

	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const databaseErrorMessage = "Database error"

// respondError maps a service error to a response. Store failures are logged
// with their operation and entity; the client only sees a fixed message.
func respondError(ctx *gin.Context, err error, notFound string) {
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrNothingToDelete) {
		ctx.JSON(http.StatusNotFound, dtos.MessageResponse{Message: notFound})
		return
	}

	event := zerolog.Ctx(ctx.Request.Context()).Error().Err(err)
	var perr *services.PersistenceError
	if errors.As(err, &perr) {
		event = event.Str("op", perr.Op).Str("entity", perr.Entity)
	}
	event.Msg("database operation failed")

	ctx.JSON(http.StatusInternalServerError, dtos.MessageResponse{Message: databaseErrorMessage})
}
