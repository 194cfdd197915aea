package business

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/pkg/response"
)

type Handler struct {
	service       *Service
	publicBaseURL string
}

func NewHandler(service *Service, publicBaseURL string) *Handler {
	return &Handler{service: service, publicBaseURL: publicBaseURL}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, services, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"business": b,
		"services": services,
		"success":  true,
	})
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Query("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"business": b})
}

func (h *Handler) BookingLink(c *gin.Context) {
	var req BookingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.service.BookingLink(c.Request.Context(), h.baseURL(c), strings.TrimSpace(req.BusinessID))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"success":    true,
		"url":        link,
		"businessId": req.BusinessID,
	})
}

// baseURL prefers the configured public URL, then the caller's Origin, then the Host header.
func (h *Handler) baseURL(c *gin.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return "https://" + c.Request.Host
}
