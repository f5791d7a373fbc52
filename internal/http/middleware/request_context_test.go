package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kinetic-backend/internal/platform/ctxutil"
)

func TestAttachRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotUser, gotReq string
	r := gin.New()
	r.Use(AttachRequestContext())
	r.GET("/x", func(c *gin.Context) {
		gotUser = ctxutil.UserID(c.Request.Context())
		gotReq = ctxutil.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderUserID, " user-7 ")
	req.Header.Set(HeaderRequestID, "req-abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if gotUser != "user-7" || gotReq != "req-abc" {
		t.Fatalf("context: user=%q req=%q", gotUser, gotReq)
	}
	if rec.Header().Get(HeaderRequestID) != "req-abc" {
		t.Fatalf("request id not echoed")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if gotUser != "" || gotReq == "" {
		t.Fatalf("anonymous: user=%q req=%q", gotUser, gotReq)
	}
}
