package notification

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("", h.Dispatch)
		notifications.GET("/inbox", h.Inbox) // ?userId=&userType=
		notifications.PUT("/inbox", h.MarkRead)
		notifications.POST("/inbox/read-all", h.MarkAllRead)
		notifications.GET("/stream", h.Stream) // ?token=
	}
}
