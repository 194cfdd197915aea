package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Authenticate handles all four auth flows, selected by the "type" field.
func (h *Handler) Authenticate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	body := gin.H{
		"success": true,
		"type":    res.UserType,
		"token":   res.Token,
	}

	var user any = res.Customer
	if res.Business != nil {
		user = res.Business
	}
	if res.Registered {
		body[string(res.UserType)] = user
	} else {
		body["user"] = user
	}

	response.JSON(c, http.StatusOK, body)
}
