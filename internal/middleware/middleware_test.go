package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/vapeshop-golang/internal/auth"
	"github.com/01moynul/vapeshop-golang/internal/metrics"
	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "middleware-test-secret"

func ok(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/x", ok)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type gateFixture struct {
	router   *gin.Engine
	store    *memory.Store
	sessions *auth.Sessions
}

func newGateFixture(t *testing.T) gateFixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := memory.New()
	sessions := auth.NewSessions(store, testSecret)

	r := gin.New()
	admin := r.Group("/admin", RequireAuth(sessions, log), RequireAdmin(store, log))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c).Username})
	})
	return gateFixture{router: r, store: store, sessions: sessions}
}

func (f gateFixture) get(t *testing.T, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f gateFixture) login(t *testing.T, username string, admin bool) (string, *models.User) {
	t.Helper()
	ctx := context.Background()
	u, err := f.store.CreateUser(ctx, models.CreateUserInput{Username: username, Password: "password-123", IsAdmin: admin})
	require.NoError(t, err)
	token, _, err := f.sessions.Start(ctx, u.ID)
	require.NoError(t, err)
	return token, u
}

func TestGates(t *testing.T) {
	t.Run("no cookie is 401", func(t *testing.T) {
		f := newGateFixture(t)
		assert.Equal(t, http.StatusUnauthorized, f.get(t, "").Code)
	})

	t.Run("forged cookie is 401", func(t *testing.T) {
		f := newGateFixture(t)
		forged, err := auth.GenerateToken([]byte("not-the-secret"), "sid", time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, f.get(t, forged).Code)
	})

	t.Run("non-admin is 403", func(t *testing.T) {
		f := newGateFixture(t)
		token, _ := f.login(t, "staff", false)
		assert.Equal(t, http.StatusForbidden, f.get(t, token).Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		f := newGateFixture(t)
		token, _ := f.login(t, "admin", true)
		rec := f.get(t, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":"admin"}`, rec.Body.String())
	})

	t.Run("logged out session is 401", func(t *testing.T) {
		f := newGateFixture(t)
		token, _ := f.login(t, "admin", true)
		require.NoError(t, f.sessions.End(context.Background(), token))
		assert.Equal(t, http.StatusUnauthorized, f.get(t, token).Code)
	})
}

func TestRateLimiter(t *testing.T) {
	log, hook := test.NewNullLogger()
	rl := NewRateLimiter(2, log)
	r := gin.New()
	r.POST("/login", rl.Handler(), ok)

	codes := []int{}
	for range 3 {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, "Rate limit exceeded", hook.LastEntry().Message)

	assert.Equal(t, 0, rl.Cleanup(time.Hour))
	assert.Equal(t, 1, rl.Cleanup(-time.Second))
}

func TestMetricsAndLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := metrics.New()
	r := gin.New()
	r.Use(Logger(log), Metrics(m))
	r.GET("/api/brands/:id", ok)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands/12", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/brands/:id", "200")))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "/api/brands/:id", entry.Data["route"])
	assert.Equal(t, 200, entry.Data["status"])
}
