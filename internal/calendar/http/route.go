package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// === Public Routes ===
	g.GET("/calendar", h.Month)
}
