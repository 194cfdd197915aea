package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/domain/appointment"
	"salonbooking/internal/middleware"
	"salonbooking/internal/pkg/jwt"
	"salonbooking/internal/testutil"
)

type handlerFixture struct {
	db     *gorm.DB
	repo   *Repository
	router *gin.Engine
	hub    *Hub
	tokens *jwt.Service
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.Business{ID: "B1", Name: "Glow", Email: "b1@glow.example", CreatedAt: now, UpdatedAt: now}).Error)
	require.NoError(t, db.Create(&domain.Customer{ID: "C1", BusinessID: "B1", Name: "Ann", Email: "ann@example.com", CreatedAt: now, UpdatedAt: now}).Error)
	require.NoError(t, db.Create(&domain.SalonService{ID: "S1", BusinessID: "B1", Name: "Haircut", CreatedAt: now, UpdatedAt: now}).Error)
	require.NoError(t, db.Create(&domain.Appointment{
		ID: "A1", BusinessID: "B1", CustomerID: "C1", ServiceID: "S1", ServiceName: "Haircut",
		AppointmentDate: now.Add(2 * time.Hour), Status: domain.AppointmentConfirmed, CreatedAt: now, UpdatedAt: now,
	}).Error)

	repo := NewRepository(db)
	hub := NewHub()
	dispatcher := NewDispatcher(repo, NewTemplates(time.UTC), nil, WithBroadcaster(hub))
	tokens := jwt.New("test-secret", time.Hour)
	h := NewHandler(NewService(repo, appointment.NewRepository(db), dispatcher, nil), hub, tokens, []string{"*"})

	r := gin.New()
	r.Use(middleware.Identify(tokens))
	h.RegisterRoutes(r.Group("/api"))
	return &handlerFixture{db: db, repo: repo, router: r, hub: hub, tokens: tokens}
}

func (f *handlerFixture) seedNotification(t *testing.T, userID string, isRead bool, createdAt time.Time) *domain.Notification {
	t.Helper()
	n := &domain.Notification{
		UserID: userID, UserType: domain.UserTypeCustomer, Title: "Appointment Confirmed",
		Message: "hello", Type: "confirmed", IsRead: isRead, CreatedAt: createdAt, UpdatedAt: createdAt,
	}
	require.NoError(t, f.repo.Create(context.Background(), n))
	return n
}

func TestDispatchEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	rr := testutil.DoJSON(f.router, http.MethodPost, "/api/notifications", map[string]any{"appointmentId": "A1", "action": "confirmed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := testutil.Decode(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Notification processed successfully", body["message"])
	assert.Equal(t, map[string]any{"sent": false, "reason": "Email service not configured"}, body["email"])
	assert.Equal(t, map[string]any{"created": true}, body["notification"])
	assert.NotContains(t, body, "sms")

	items, err := f.repo.ListForUser(context.Background(), "C1", domain.UserTypeCustomer)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Your Haircut appointment on 3/10/2026 has been confirmed", items[0].Message)
}

func TestDispatchEndpoint_Errors(t *testing.T) {
	f := newHandlerFixture(t)

	cases := []struct {
		body any
		code int
		msg  string
	}{
		{map[string]any{"action": "confirmed"}, http.StatusBadRequest, "appointmentId and action are required"},
		{map[string]any{"appointmentId": "A1"}, http.StatusBadRequest, "appointmentId and action are required"},
		{map[string]any{"appointmentId": "A1", "action": "archived"}, http.StatusBadRequest, "Invalid action"},
		{map[string]any{"appointmentId": "missing", "action": "confirmed"}, http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		rr := testutil.DoJSON(f.router, http.MethodPost, "/api/notifications", tc.body)
		assert.Equal(t, tc.code, rr.Code, rr.Body.String())
		if tc.msg != "" {
			assert.Equal(t, tc.msg, testutil.Decode(t, rr)["error"])
		}
	}
}

func TestInbox_NewestFirstWithUnreadCount(t *testing.T) {
	f := newHandlerFixture(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 55; i++ {
		f.seedNotification(t, "C1", i%2 == 0, base.Add(time.Duration(i)*time.Minute))
	}
	f.seedNotification(t, "C2", false, base)

	rr := testutil.DoJSON(f.router, http.MethodGet, "/api/notifications/inbox?userId=C1&userType=customer", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := testutil.Decode(t, rr)

	items := body["notifications"].([]any)
	require.Len(t, items, 50)
	first := items[0].(map[string]any)
	last := items[49].(map[string]any)
	assert.Greater(t, first["created_at"].(string), last["created_at"].(string))
	assert.EqualValues(t, 27, body["unreadCount"])
}

func TestInbox_RequiresRecipient(t *testing.T) {
	f := newHandlerFixture(t)

	for _, path := range []string{
		"/api/notifications/inbox",
		"/api/notifications/inbox?userId=C1",
		"/api/notifications/inbox?userType=customer",
	} {
		rr := testutil.DoJSON(f.router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.Equal(t, "userId and userType are required", testutil.Decode(t, rr)["error"])
	}

	rr := testutil.DoJSON(f.router, http.MethodGet, "/api/notifications/inbox?userId=C1&userType=admin", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMarkRead(t *testing.T) {
	f := newHandlerFixture(t)
	n := f.seedNotification(t, "C1", false, time.Now().UTC())

	rr := testutil.DoJSON(f.router, http.MethodPut, "/api/notifications/inbox", map[string]any{"notificationId": n.ID, "isRead": true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := testutil.Decode(t, rr)["notification"].(map[string]any)
	assert.Equal(t, n.ID, got["id"])
	assert.Equal(t, true, got["is_read"])

	rr = testutil.DoJSON(f.router, http.MethodPut, "/api/notifications/inbox", map[string]any{"notificationId": n.ID, "isRead": false})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, testutil.Decode(t, rr)["notification"].(map[string]any)["is_read"])

	rr = testutil.DoJSON(f.router, http.MethodPut, "/api/notifications/inbox", map[string]any{"isRead": true})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "notificationId is required", testutil.Decode(t, rr)["error"])

	rr = testutil.DoJSON(f.router, http.MethodPut, "/api/notifications/inbox", map[string]any{"notificationId": "nope", "isRead": true})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMarkAllRead(t *testing.T) {
	f := newHandlerFixture(t)
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		f.seedNotification(t, "C1", false, now.Add(time.Duration(i)*time.Second))
	}
	f.seedNotification(t, "C1", true, now)
	f.seedNotification(t, "C2", false, now)

	rr := testutil.DoJSON(f.router, http.MethodPost, "/api/notifications/inbox/read-all", map[string]any{"userId": "C1", "userType": "customer"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.EqualValues(t, 3, testutil.Decode(t, rr)["updated"])

	n, err := f.repo.UnreadCount(context.Background(), "C2", domain.UserTypeCustomer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "other recipients untouched")
}

func (f *handlerFixture) doAs(t *testing.T, userID string, userType domain.UserType, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	token, err := f.tokens.GenerateToken(userID, string(userType), "B1")
	require.NoError(t, err)

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestInbox_SignedInUserSeesOnlyOwnNotifications(t *testing.T) {
	f := newHandlerFixture(t)
	now := time.Now().UTC()
	mine := f.seedNotification(t, "C1", false, now)
	theirs := f.seedNotification(t, "C2", false, now)

	rr := f.doAs(t, "C1", domain.UserTypeCustomer, http.MethodGet, "/api/notifications/inbox?userId=C1&userType=customer", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	items := testutil.Decode(t, rr)["notifications"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].(map[string]any)["id"])

	cases := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"inbox of another customer", http.MethodGet, "/api/notifications/inbox?userId=C2&userType=customer", nil},
		{"same id under another user type", http.MethodGet, "/api/notifications/inbox?userId=C1&userType=business", nil},
		{"mark another user's notification", http.MethodPut, "/api/notifications/inbox", map[string]any{"notificationId": theirs.ID, "isRead": true}},
		{"read-all for another customer", http.MethodPost, "/api/notifications/inbox/read-all", map[string]any{"userId": "C2", "userType": "customer"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := f.doAs(t, "C1", domain.UserTypeCustomer, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusForbidden, rr.Code, rr.Body.String())
			assert.Equal(t, msgForbidden, testutil.Decode(t, rr)["error"])
		})
	}

	n, err := f.repo.UnreadCount(context.Background(), "C2", domain.UserTypeCustomer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "other inbox untouched")
}

func TestMarkRead_SignedInOwner(t *testing.T) {
	f := newHandlerFixture(t)
	n := f.seedNotification(t, "C1", false, time.Now().UTC())

	rr := f.doAs(t, "C1", domain.UserTypeCustomer, http.MethodPut, "/api/notifications/inbox", map[string]any{"notificationId": n.ID})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, true, testutil.Decode(t, rr)["notification"].(map[string]any)["is_read"])

	rr = f.doAs(t, "C1", domain.UserTypeCustomer, http.MethodPut, "/api/notifications/inbox", map[string]any{"notificationId": "nope"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = f.doAs(t, "C1", domain.UserTypeCustomer, http.MethodPost, "/api/notifications/inbox/read-all", map[string]any{"userId": "C1", "userType": "customer"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.EqualValues(t, 0, testutil.Decode(t, rr)["updated"])
}
