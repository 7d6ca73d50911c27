package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func permRequest(t *testing.T, perms interface{}, setPerms bool) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if setPerms {
			c.Set("permissions", perms)
		}
		c.Next()
	})
	router.POST("/notifications", RequirePermission("notifications:create"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		perms      interface{}
		setPerms   bool
		wantStatus int
	}{
		{name: "exact permission", perms: []string{"notifications:create"}, setPerms: true, wantStatus: http.StatusCreated},
		{name: "platform admin bypasses", perms: []string{PermissionPlatformAdmin}, setPerms: true, wantStatus: http.StatusCreated},
		{name: "missing permission", perms: []string{"notifications:read"}, setPerms: true, wantStatus: http.StatusForbidden},
		{name: "no permissions in context", setPerms: false, wantStatus: http.StatusForbidden},
		{name: "wrong permissions type", perms: "notifications:create", setPerms: true, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := permRequest(t, tt.perms, tt.setPerms)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
