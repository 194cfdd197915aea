package appointment

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.Create)
		appointments.GET("", h.List) // ?id= or ?businessId=&dateRange=&status=&stylist=&page=&limit=
		appointments.PUT("", h.Update)
		appointments.DELETE("", h.Delete) // ?id=
	}
}
