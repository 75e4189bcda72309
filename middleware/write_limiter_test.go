package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestWriteLimiterAllow(t *testing.T) {
	l := NewWriteLimiter(5, 15*time.Minute, "limit")
	now := time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if !l.allow("1.2.3.4", now) {
			t.Fatalf("request %d within quota was rejected", i+1)
		}
	}
	if l.allow("1.2.3.4", now.Add(14*time.Minute)) {
		t.Error("6th request inside the window must be rejected")
	}

	// Another client is counted independently.
	if !l.allow("5.6.7.8", now) {
		t.Error("separate client identity must have its own counter")
	}

	// The window elapsed; the same client is admitted again.
	if !l.allow("1.2.3.4", now.Add(16*time.Minute)) {
		t.Error("request after the window elapsed must be admitted")
	}
}

func TestWriteLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewWriteLimiter(2, time.Minute, "Demasiadas solicitudes desde esta IP, intenta de nuevo más tarde.")
	var handled int
	router := gin.New()
	router.POST("/api/appointments", l.Middleware(), func(c *gin.Context) {
		handled++
		c.JSON(http.StatusCreated, gin.H{})
	})

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader("{}"))
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := do("9.9.9.9"); w.Code != http.StatusCreated {
		t.Fatalf("first request: status %d", w.Code)
	}
	if w := do("9.9.9.9"); w.Code != http.StatusCreated {
		t.Fatalf("second request: status %d", w.Code)
	}

	w := do("9.9.9.9")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d, want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Demasiadas solicitudes") {
		t.Errorf("429 body should carry the limiter message, got %s", w.Body.String())
	}
	if handled != 2 {
		t.Errorf("throttled request must not reach the handler, handled=%d", handled)
	}

	// A different client is unaffected.
	if w := do("10.0.0.1"); w.Code != http.StatusCreated {
		t.Errorf("other client: status %d", w.Code)
	}
}
