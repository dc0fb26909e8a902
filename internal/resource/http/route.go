package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/auditoriums")

	// === Public Routes ===
	group.GET("/:id/photo", h.Photo)

	// === Authenticated Routes ===
	group.GET("", authMiddleware, h.List)
	group.GET("/:id", authMiddleware, h.Get)

	// === Staff Routes ===
	staff := group.Group("", authMiddleware, staffMiddleware)
	{
		staff.POST("", h.Create)
		staff.PATCH("/:id", h.Update)
		staff.DELETE("/:id", h.Delete)
		staff.PUT("/:id/photo", h.UploadPhoto)
	}
}
