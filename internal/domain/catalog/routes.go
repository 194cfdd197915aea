package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/services")
	{
		services.POST("", h.CreateService)
		services.GET("", h.ListServices)      // ?businessId=
		services.PUT("", h.UpdateService)
		services.DELETE("", h.DeleteService) // ?id=
	}

	stylists := r.Group("/stylists")
	{
		stylists.POST("", h.CreateStylist)
		stylists.GET("", h.ListStylists)      // ?businessId=
		stylists.PUT("", h.UpdateStylist)
		stylists.DELETE("", h.DeleteStylist) // ?id=
	}
}
