package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lenddesk-backend/internal/domain/application"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func idempServer(t *testing.T, rdb *redis.Client, calls *int32) *echo.Echo {
	t.Helper()
	e := echo.New()
	inject := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetActor(c, application.Actor{ID: strings.Repeat("a", 32), Role: application.RoleApplicant})
			return next(c)
		}
	}
	e.POST("/applications", func(c echo.Context) error {
		n := atomic.AddInt32(calls, 1)
		return c.JSON(http.StatusCreated, map[string]any{"call": n})
	}, inject, Idempotency(rdb, time.Hour))
	e.GET("/applications", func(c echo.Context) error {
		atomic.AddInt32(calls, 1)
		return c.NoContent(http.StatusOK)
	}, inject, Idempotency(rdb, time.Hour))
	return e
}

func doReq(e *echo.Echo, method, reqID, at, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/applications", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/applications", nil)
	}
	if reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	}
	if at != "" {
		req.Header.Set("X-Request-At", at)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func epochNow() string { return fmt.Sprintf("%d", time.Now().Unix()) }

func TestIdempotency_ReplaysCompletedResponse(t *testing.T) {
	var calls int32
	e := idempServer(t, newRedis(t), &calls)
	reqID := strings.Repeat("1", 32)

	first := doReq(e, http.MethodPost, reqID, epochNow(), `{"amount": 100}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: %d, body = %s", first.Code, first.Body.String())
	}

	second := doReq(e, http.MethodPost, reqID, epochNow(), `{"amount": 100}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: %d, body = %s", second.Code, second.Body.String())
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_RejectsReusedIDWithDifferentBody(t *testing.T) {
	var calls int32
	e := idempServer(t, newRedis(t), &calls)
	reqID := strings.Repeat("2", 32)

	if rec := doReq(e, http.MethodPost, reqID, epochNow(), `{"amount": 100}`); rec.Code != http.StatusCreated {
		t.Fatalf("first: %d", rec.Code)
	}
	rec := doReq(e, http.MethodPost, reqID, epochNow(), `{"amount": 999}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("mismatched body: %d, want 409", rec.Code)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	var calls int32
	e := idempServer(t, newRedis(t), &calls)

	tests := []struct {
		name  string
		reqID string
		at    string
	}{
		{"missing request id", "", epochNow()},
		{"malformed request id", "not-an-id", epochNow()},
		{"missing request at", strings.Repeat("3", 32), ""},
		{"naive timestamp", strings.Repeat("3", 32), "2026-01-02T10:00:00"},
		{"too skewed", strings.Repeat("3", 32), fmt.Sprintf("%d", time.Now().Add(-time.Hour).Unix())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doReq(e, http.MethodPost, tt.reqID, tt.at, `{}`)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("handler ran %d times, want 0", calls)
	}
}

func TestIdempotency_AcceptsUUIDAndRFC3339(t *testing.T) {
	var calls int32
	e := idempServer(t, newRedis(t), &calls)

	at := time.Now().UTC().Format(time.RFC3339)
	rec := doReq(e, http.MethodPost, "f47ac10b-58cc-4372-a567-0e02b2c3d479", at, `{}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestIdempotency_SkipsReads(t *testing.T) {
	var calls int32
	e := idempServer(t, newRedis(t), &calls)

	// no idempotency headers needed on GET
	rec := doReq(e, http.MethodGet, "", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestIdempotency_InProgressConflict(t *testing.T) {
	rdb := newRedis(t)
	var calls int32
	e := idempServer(t, rdb, &calls)
	reqID := strings.Repeat("4", 32)

	// Simulate a first request that grabbed the lock but has not finished.
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(`{}`)), RequestID: reqID, CreatedAt: nowUTC()}
	ok, err := provisionalSet(context.Background(), rdb, buildKey(http.MethodPost, "/applications", strings.Repeat("a", 32), reqID), entry)
	if err != nil || !ok {
		t.Fatalf("seed lock: ok=%v err=%v", ok, err)
	}

	rec := doReq(e, http.MethodPost, reqID, epochNow(), `{}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("handler ran %d times, want 0", calls)
	}
}
