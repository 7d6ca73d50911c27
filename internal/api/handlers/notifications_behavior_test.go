package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/ent/deliveryrecord"
	"memberhub.io/memberhub/ent/notificationdefinition"
	"memberhub.io/memberhub/internal/api/middleware"
	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/store"
	"memberhub.io/memberhub/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
	gin.SetMode(gin.TestMode)
}

// testServer wires a Server over an isolated postgres schema with a stub
// identity injected instead of real JWT auth.
func testServer(t *testing.T, prefix string) (*Server, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	return NewServer(ServerDeps{
		EntClient: client,
		Store:     store.New(client),
	}), client
}

func testRouter(server *Server, userID string, perms []string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("permissions", perms)
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), userID, userID, nil),
		)
		c.Next()
	})

	v1 := router.Group("/api/v1")
	v1.POST("/notifications", server.CreateNotification)
	v1.GET("/notifications/:recipientId", server.ListNotifications)
	v1.GET("/notifications/:recipientId/unread-count", server.GetUnreadCount)
	v1.PATCH("/notifications/read/:instanceId", server.MarkNotificationRead)
	v1.PATCH("/notifications/read-all/:recipientId", server.MarkAllNotificationsRead)
	v1.DELETE("/notifications/:definitionId", server.CancelNotification)
	return router
}

func seedInbox(t *testing.T, s *store.Store, recipientID string, n int) []string {
	t.Helper()

	ctx := context.Background()
	def, err := s.CreateDefinition(ctx, store.DefinitionParams{
		Title:      "Annual meeting",
		Message:    "Sunday after service",
		Type:       notificationdefinition.TypeANNOUNCEMENT,
		TargetKind: notificationdefinition.TargetKindALL,
		Recurrence: notificationdefinition.RecurrenceNONE,
		CreatedBy:  "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}

	instanceIDs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		inst, err := s.CreateInstance(ctx, def.ID, time.Now().UTC(), []string{recipientID})
		if err != nil {
			t.Fatalf("seed instance: %v", err)
		}
		if _, err := s.CreateDelivery(ctx, inst.ID, recipientID, deliveryrecord.DeliveredViaINITIAL_SYNC); err != nil {
			t.Fatalf("seed delivery: %v", err)
		}
		instanceIDs = append(instanceIDs, inst.ID)
	}
	return instanceIDs
}

func TestListNotifications_ReturnsOwnInbox(t *testing.T) {
	t.Parallel()

	server, client := testServer(t, "handlers_list_inbox")
	s := store.New(client)
	seedInbox(t, s, "m-anna", 2)
	router := testRouter(server, "m-anna", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/m-anna", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Notifications []store.InboxItem `json:"notifications"`
		UnreadCount   int               `json:"unread_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Notifications) != 2 || body.UnreadCount != 2 {
		t.Fatalf("notifications=%d unread=%d, want 2/2", len(body.Notifications), body.UnreadCount)
	}
}

func TestListNotifications_RejectsOtherRecipient(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "handlers_list_forbidden")
	router := testRouter(server, "m-anna", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/m-ben", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestListNotifications_AdminMayReadAnyInbox(t *testing.T) {
	t.Parallel()

	server, client := testServer(t, "handlers_list_admin")
	seedInbox(t, store.New(client), "m-ben", 1)
	router := testRouter(server, "admin-1", []string{"platform:admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/m-ben", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestMarkNotificationRead_Idempotent(t *testing.T) {
	t.Parallel()

	server, client := testServer(t, "handlers_mark_read")
	instanceIDs := seedInbox(t, store.New(client), "m-anna", 1)
	router := testRouter(server, "m-anna", nil)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/read/"+instanceIDs[0], nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d body=%s", i, w.Code, w.Body.String())
		}
	}

	count, err := store.New(client).UnreadCount(context.Background(), "m-anna")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 0 {
		t.Fatalf("unread = %d, want 0", count)
	}
}

func TestMarkNotificationRead_UnknownInstance(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "handlers_mark_read_missing")
	router := testRouter(server, "m-anna", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/read/no-such-instance", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestMarkAllNotificationsRead(t *testing.T) {
	t.Parallel()

	server, client := testServer(t, "handlers_mark_all")
	seedInbox(t, store.New(client), "m-anna", 3)
	router := testRouter(server, "m-anna", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/read-all/m-anna", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Marked int `json:"marked"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Marked != 3 {
		t.Fatalf("marked = %d, want 3", body.Marked)
	}
}

func TestGetUnreadCount(t *testing.T) {
	t.Parallel()

	server, client := testServer(t, "handlers_unread_count")
	seedInbox(t, store.New(client), "m-anna", 2)
	router := testRouter(server, "m-anna", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/m-anna/unread-count", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 2 {
		t.Fatalf("count = %d, want 2", body.Count)
	}
}

func TestCancelNotification(t *testing.T) {
	t.Parallel()

	server, client := testServer(t, "handlers_cancel")
	s := store.New(client)
	def, err := s.CreateDefinition(context.Background(), store.DefinitionParams{
		Title:      "Weekly digest",
		Message:    "This week at a glance",
		Type:       notificationdefinition.TypeANNOUNCEMENT,
		TargetKind: notificationdefinition.TargetKindALL,
		Recurrence: notificationdefinition.RecurrenceWEEKLY,
		CreatedBy:  "admin-1",
	})
	if err != nil {
		t.Fatalf("seed definition: %v", err)
	}
	router := testRouter(server, "admin-1", []string{"notifications:create"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/"+def.ID, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	got, err := s.GetDefinition(context.Background(), def.ID)
	if err != nil {
		t.Fatalf("reload definition: %v", err)
	}
	if got.State != notificationdefinition.StateCANCELLED {
		t.Fatalf("state = %s, want CANCELLED", got.State)
	}
}

func TestCreateNotification_ValidationFailures(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "handlers_create_validation")
	router := testRouter(server, "admin-1", []string{"notifications:create"})

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "missing title",
			body:     `{"message":"m","type":"REMINDER","target":{"is_global":true}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown type",
			body:     `{"title":"t","message":"m","type":"NEWSLETTER","target":{"is_global":true}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "ambiguous target",
			body:     `{"title":"t","message":"m","type":"REMINDER","target":{"is_global":true,"group_id":"g-1"}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty target",
			body:     `{"title":"t","message":"m","type":"REMINDER","target":{}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			// Recurring with no scheduled_at is valid: the series anchors
			// on the immediate first firing. The 404 on the target proves
			// the request got past recurrence validation.
			name:     "recurring without scheduled_at passes validation",
			body:     `{"title":"t","message":"m","type":"REMINDER","target":{"group_id":"g-nope"},"recurrence":"WEEKLY"}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown recurrence",
			body:     `{"title":"t","message":"m","type":"REMINDER","target":{"is_global":true},"scheduled_at":"2026-10-01T09:00:00Z","recurrence":"HOURLY"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing target group",
			body:     `{"title":"t","message":"m","type":"REMINDER","target":{"group_id":"g-nope"}}`,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body=%s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}
