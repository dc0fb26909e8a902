package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /bookings. Every route needs a signed-in user; the
// service narrows reads and writes to the caller's own bookings.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings", authMiddleware)

	bookings.GET("", h.List)
	bookings.POST("", h.Create)
	bookings.GET("/:id", h.Get)
	bookings.PATCH("/:id", h.Update)
	bookings.DELETE("/:id", h.Delete)

	// === Staff Routes ===
	bookings.POST("/:id/confirm", staffMiddleware, h.Confirm)
}
