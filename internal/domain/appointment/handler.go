package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"appointment": a})
}

// List serves both a single appointment (?id=) and the filtered business listing.
func (h *Handler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		a, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.JSON(c, http.StatusOK, gin.H{"appointment": a})
		return
	}

	q := ListQuery{
		BusinessID: c.Query("businessId"),
		DateRange:  c.Query("dateRange"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		Status:     c.Query("status"),
		Stylist:    c.Query("stylist"),
		Page:       queryInt(c, "page", defaultPage),
		Limit:      queryInt(c, "limit", defaultLimit),
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
