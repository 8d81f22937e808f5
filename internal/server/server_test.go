package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	booking "furniture-booking/internal/bookingService"
	model "furniture-booking/internal/models"
	"furniture-booking/internal/render"
	"furniture-booking/internal/repository"
	"furniture-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.Seed(repository.Furniture, []model.Furniture{{ID: 1, Name: "Stool", Description: "Three legs"}}))
	require.NoError(t, repo.Seed(repository.Users, []model.User{}))
	require.NoError(t, repo.Seed(repository.Bookings, []model.Booking{}))
	require.NoError(t, repo.Seed(repository.Payments, []model.Payment{}))

	renderer := render.NewRenderer(fstest.MapFS{
		"index.html": {Data: []byte("{{ furniture }}")},
		"login.html": {Data: []byte("login")},
	})
	return SetupRouter(booking.NewBookingService(repo), renderer, opts)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newRouter(t, Options{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(utils.RequestIDHeader))
	require.NoError(t, err)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set(utils.RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, incoming, w.Header().Get(utils.RequestIDHeader))
}

func TestRouter_NotFoundCarriesMiddleware(t *testing.T) {
	router := newRouter(t, Options{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nowhere"},
		{http.MethodPost, "/home"},
		{http.MethodPut, "/register"},
		{http.MethodDelete, "/furniture/1"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
		require.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newRouter(t, Options{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `furniture_booking_http_requests_total{method="GET",route="/home",status="200"}`)
}

func TestRouter_WriteRateLimit(t *testing.T) {
	router := newRouter(t, Options{WriteRateLimit: rate.Limit(0.001), WriteBurst: 2})

	login := func() int {
		form := url.Values{"email": {"a@example.com"}, "password": {"pw"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusFound, login())
	require.Equal(t, http.StatusFound, login())
	require.Equal(t, http.StatusTooManyRequests, login())

	// reads are never throttled
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(0.001), 1)

	require.True(t, rl.limiter("10.0.0.1").Allow())
	require.False(t, rl.limiter("10.0.0.1").Allow())
	require.True(t, rl.limiter("10.0.0.2").Allow())
}

func TestRecoveryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.CustomRecovery(RecoveryHandler))
	router.GET("/boom", func(c *gin.Context) { panic("secret internal state") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "secret")
}
