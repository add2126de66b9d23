package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moritani/scribe-go/api/models"
)

// setupGateRouter builds a test router guarded by the gate.
func setupGateRouter(strict bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthGate(strict))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	router.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	router.GET("/api/status", func(c *gin.Context) { c.String(http.StatusOK, "status") })
	return router
}

func doGet(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthGateRedirectsWithoutCookie(t *testing.T) {
	router := setupGateRouter(false)

	w := doGet(router, "/", "")
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/login" {
		t.Errorf("Expected redirect to /login, got %q", location)
	}
}

func TestAuthGateLoginPageAlwaysPasses(t *testing.T) {
	router := setupGateRouter(false)

	w := doGet(router, "/login", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for /login without cookie, got %d", w.Code)
	}
}

func TestAuthGateAcceptsAnyNonEmptyCookie(t *testing.T) {
	router := setupGateRouter(false)

	// presence-only check: even a garbage value passes
	w := doGet(router, "/", "garbage-token")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with non-empty cookie, got %d", w.Code)
	}
}

func TestAuthGateExemptsAPIRoutes(t *testing.T) {
	router := setupGateRouter(false)

	w := doGet(router, "/api/status", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected API route to bypass the gate, got %d", w.Code)
	}
}

func TestAuthGateStrictMode(t *testing.T) {
	models.InitSessionRegistry(time.Hour)
	router := setupGateRouter(true)

	w := doGet(router, "/", "not-registered")
	if w.Code != http.StatusFound {
		t.Errorf("Expected 302 for unregistered token in strict mode, got %d", w.Code)
	}

	models.RegisterSessionToken("registered-token")
	w = doGet(router, "/", "registered-token")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for registered token in strict mode, got %d", w.Code)
	}

	models.RevokeSessionToken("registered-token")
	w = doGet(router, "/", "registered-token")
	if w.Code != http.StatusFound {
		t.Errorf("Expected 302 after revocation in strict mode, got %d", w.Code)
	}
}
