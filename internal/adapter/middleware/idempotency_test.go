package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const testSID = "cccccccccccccccccccccccccccccccc"

func newIdempEcho(t *testing.T, calls *atomic.Int64) (*echo.Echo, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.POST("/pagos", func(c echo.Context) error {
		calls.Add(1)
		return c.JSON(http.StatusCreated, map[string]string{"result": "ok"})
	}, Session(), Idempotency(rdb, time.Minute))
	return e, rdb
}

func doPost(e *echo.Echo, reqID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pagos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(SessionHeader, testSID)
	if reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_MissingRequestID(t *testing.T) {
	var calls atomic.Int64
	e, _ := newIdempEcho(t, &calls)

	rec := doPost(e, "", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if calls.Load() != 0 {
		t.Fatalf("handler ran %d times, want 0", calls.Load())
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	var calls atomic.Int64
	e, _ := newIdempEcho(t, &calls)
	reqID := strings.Repeat("d", 32)

	first := doPost(e, reqID, `{"montoPagado":"150"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", first.Code)
	}

	second := doPost(e, reqID, `{"montoPagado":"150"}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201", second.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("replay body = %q, want %q", second.Body.String(), first.Body.String())
	}
	if calls.Load() != 1 {
		t.Fatalf("handler ran %d times, want 1", calls.Load())
	}
}

func TestIdempotency_ConflictOnDifferentBody(t *testing.T) {
	var calls atomic.Int64
	e, _ := newIdempEcho(t, &calls)
	reqID := strings.Repeat("e", 32)

	if rec := doPost(e, reqID, `{"montoPagado":"150"}`); rec.Code != http.StatusCreated {
		t.Fatalf("first status = %d", rec.Code)
	}
	rec := doPost(e, reqID, `{"montoPagado":"999"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if calls.Load() != 1 {
		t.Fatalf("handler ran %d times, want 1", calls.Load())
	}
}

func TestIdempotency_GetPassesThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.GET("/pagos", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Session(), Idempotency(rdb, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/pagos", nil)
	req.Header.Set(SessionHeader, testSID)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (no X-Request-Id needed on GET)", rec.Code)
	}
}

func TestValidReqID(t *testing.T) {
	for _, ok := range []string{
		strings.Repeat("a", 32),
		"3b241101-e2bb-4255-8caf-4136c566a962",
	} {
		if !validReqID(ok) {
			t.Fatalf("expected valid: %q", ok)
		}
	}
	for _, bad := range []string{"", "short", strings.Repeat("A", 32), strings.Repeat("z", 32)} {
		if validReqID(bad) {
			t.Fatalf("expected invalid: %q", bad)
		}
	}
}
