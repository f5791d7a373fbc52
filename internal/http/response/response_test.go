package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kinetic-backend/internal/platform/apierr"
)

func respond(t *testing.T, err error) (int, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondAPIError(c, err, "fallback")
	var env ErrorEnvelope
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &env); decodeErr != nil {
		t.Fatalf("decode: %v", decodeErr)
	}
	return rec.Code, env
}

func TestRespondAPIError(t *testing.T) {
	code, env := respond(t, apierr.BadRequest("invalid_request", errors.New("format failed oneof")))
	if code != http.StatusBadRequest || env.Error.Code != "invalid_request" || env.Error.Message != "format failed oneof" {
		t.Fatalf("bad request: code=%d env=%+v", code, env)
	}

	code, env = respond(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError || env.Error.Code != "fallback" {
		t.Fatalf("internal: code=%d env=%+v", code, env)
	}
	if env.Error.Message != "Internal Server Error" {
		t.Fatalf("internal message leaked: %q", env.Error.Message)
	}

	code, env = respond(t, apierr.BadGateway("render_dispatch_failed", errors.New("render dispatch: redis down")))
	if code != http.StatusBadGateway || env.Error.Message != "render dispatch: redis down" {
		t.Fatalf("bad gateway: code=%d env=%+v", code, env)
	}
}
