package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/princinho/storefront/models"
	"github.com/princinho/storefront/store"
	"github.com/princinho/storefront/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSession = SessionConfig{Secret: "s3cret", TTL: time.Hour}

func sessionRouter(registry *store.CartRegistry, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/whoami", CartSession(registry, testSession, logger), func(c *gin.Context) {
		_, ok := CartFromContext(c)
		c.JSON(http.StatusOK, gin.H{"session": SessionIDFromContext(c), "hasCart": ok})
	})
	return r
}

func TestCartSessionIssuesToken(t *testing.T) {
	registry := store.NewCartRegistry(time.Hour)
	r := sessionRouter(registry, zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)

	token := w.Header().Get(SessionHeader)
	require.NotEmpty(t, token)
	claims, err := utils.ValidateSessionToken(token, testSession.Secret)
	require.NoError(t, err)
	_, ok := registry.Lookup(claims.SessionID)
	assert.True(t, ok)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCartSessionReusesValidToken(t *testing.T) {
	registry := store.NewCartRegistry(time.Hour)
	r := sessionRouter(registry, zap.NewNop())

	token, err := utils.GenerateSessionToken("existing", testSession.Secret, time.Hour)
	require.NoError(t, err)

	for _, viaCookie := range []bool{false, true} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if viaCookie {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		} else {
			req.Header.Set(SessionHeader, token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(SessionHeader))
		assert.JSONEq(t, `{"session":"existing","hasCart":true}`, w.Body.String())
	}
	assert.Equal(t, 1, registry.Len())
}

func TestCartSessionReissuesAgingToken(t *testing.T) {
	registry := store.NewCartRegistry(time.Hour)
	r := sessionRouter(registry, zap.NewNop())
	registry.Open("shopper").AddItem(models.CartLineItem{Id: "001", Price: 89, Quantity: 1})

	issued := time.Now().Add(-40 * time.Minute)
	aging, err := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.SessionClaims{
		SessionID: "shopper",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(testSession.TTL)),
		},
	}).SignedString([]byte(testSession.Secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, aging)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"session":"shopper","hasCart":true}`, w.Body.String())

	fresh := w.Header().Get(SessionHeader)
	require.NotEmpty(t, fresh)
	assert.NotEqual(t, aging, fresh)
	claims, err := utils.ValidateSessionToken(fresh, testSession.Secret)
	require.NoError(t, err)
	assert.Equal(t, "shopper", claims.SessionID)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(50*time.Minute)))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, fresh, cookies[0].Value)

	cart, ok := registry.Lookup("shopper")
	require.True(t, ok)
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, registry.Len())
}

func TestCartSessionReplacesBadToken(t *testing.T) {
	registry := store.NewCartRegistry(time.Hour)
	r := sessionRouter(registry, zap.NewNop())

	forged, err := utils.GenerateSessionToken("victim", "wrong-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(SessionHeader))
	_, ok := registry.Lookup("victim")
	assert.False(t, ok)
}

func TestCartFromContextMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CartFromContext(c)
	assert.False(t, ok)
	assert.Empty(t, SessionIDFromContext(c))
}

func TestRequestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := sessionRouter(store.NewCartRegistry(time.Hour), zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami?x=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/whoami?x=1", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
	assert.NotEmpty(t, fields["session_id"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warn, 1)
	assert.EqualValues(t, 404, warn[0].ContextMap()["status"])
}
