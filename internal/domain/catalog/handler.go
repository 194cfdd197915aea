package catalog

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

/* ---------- SERVICE HANDLERS ---------- */

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Service added successfully",
		"data":    []any{svc},
	})
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), c.Query("businessId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, services)
}

func (h *Handler) UpdateService(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"service": svc, "success": true})
}

func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.service.DeleteService(c.Request.Context(), c.Query("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Service removed successfully"})
}

/* ---------- STYLIST HANDLERS ---------- */

func (h *Handler) CreateStylist(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st, err := h.service.CreateStylist(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"stylist": st, "success": true})
}

func (h *Handler) ListStylists(c *gin.Context) {
	stylists, err := h.service.ListStylists(c.Request.Context(), c.Query("businessId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"stylists": stylists, "success": true})
}

func (h *Handler) UpdateStylist(c *gin.Context) {
	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st, err := h.service.UpdateStylist(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"stylist": st, "success": true})
}

func (h *Handler) DeleteStylist(c *gin.Context) {
	if err := h.service.DeleteStylist(c.Request.Context(), c.Query("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Stylist deleted successfully"})
}
