package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET requests reporting that the process is serving
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
