package notification

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"salonbooking/internal/domain"
	"salonbooking/internal/middleware"
	"salonbooking/internal/pkg/response"
)

type Handler struct {
	service  *Service
	hub      *Hub
	tokens   TokenValidator
	upgrader websocket.Upgrader
}

func NewHandler(service *Service, hub *Hub, tokens TokenValidator, allowedOrigins []string) *Handler {
	return &Handler{
		service: service,
		hub:     hub,
		tokens:  tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[strings.TrimRight(o, "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// viewer returns the identity middleware.Identify attached, or nil for an
// anonymous request.
func viewer(c *gin.Context) *Viewer {
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		return nil
	}
	return &Viewer{UserID: userID, UserType: domain.UserType(c.GetString(middleware.CtxUserType))}
}

func (h *Handler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgDispatchRequired)
		return
	}

	report, err := h.service.Dispatch(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	body := gin.H{
		"success":      true,
		"message":      "Notification processed successfully",
		"email":        report.Email,
		"notification": report.Notification,
	}
	if report.SMS != nil {
		body["sms"] = report.SMS
	}
	response.JSON(c, http.StatusOK, body)
}

func (h *Handler) Inbox(c *gin.Context) {
	inbox, err := h.service.Inbox(c.Request.Context(), viewer(c), c.Query("userId"), c.Query("userType"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, inbox)
}

func (h *Handler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := h.service.SetRead(c.Request.Context(), viewer(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"notification": n})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	var req ReadAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := h.service.MarkAllRead(c.Request.Context(), viewer(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "updated": n})
}

// Stream upgrades to a websocket. Browsers cannot set headers on the
// handshake, so the token travels in the query string.
func (h *Handler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	claims, err := h.tokens.ValidateToken(token)
	if err != nil || claims.UserID == "" {
		response.Error(c, http.StatusUnauthorized, msgInvalidToken)
		return
	}
	userType := domain.UserType(claims.UserType)
	if !userType.Valid() {
		response.Error(c, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the handshake error
		return
	}
	h.hub.ServeWS(conn, userType, claims.UserID)
}
