package business

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/business", h.Register)
	r.GET("/business", h.Get) // ?id=
	r.POST("/booking-link", h.BookingLink)
}
