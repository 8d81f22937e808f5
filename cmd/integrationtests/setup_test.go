package integrationtests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	booking "furniture-booking/internal/bookingService"
	model "furniture-booking/internal/models"
	"furniture-booking/internal/render"
	"furniture-booking/internal/repository"
	"furniture-booking/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// pageTemplates echo their context so tests can decode what was rendered
var pageTemplates = fstest.MapFS{
	"index.html":     {Data: []byte("{{ furniture }}")},
	"register.html":  {Data: []byte("<form action=\"/register\"></form>")},
	"login.html":     {Data: []byte("<form action=\"/login\"></form>")},
	"profile.html":   {Data: []byte("<form action=\"/account\"></form>")},
	"furniture.html": {Data: []byte("{{ item }}")},
	"search.html":    {Data: []byte("{{ furniture }}")},
	"booking.html":   {Data: []byte("{{ item }}")},
	"payment.html":   {Data: []byte("{{ booking_id }}")},
}

func seedFurniture() []model.Furniture {
	return []model.Furniture{
		{ID: 1, Name: "Oak Dining Table", Description: "Solid oak, seats six", Price: 450},
		{ID: 2, Name: "Velvet Sofa", Description: "Deep green velvet", Price: 899},
		{ID: 3, Name: "Reading Lamp", Description: "Brass lamp with an Oak base", Price: 120},
		{ID: 4, Name: "Pine Bookshelf", Description: "Five shelves", Price: 160},
	}
}

// testEnv is a router over a file-backed store in a temp dir
type testEnv struct {
	router *gin.Engine
	store  *repository.FileStore
	dir    string
}

// SetupTestRouter seeds furniture and empty collections, then builds the full router.
func SetupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := repository.NewFileStore(dir)
	require.NoError(t, repository.SaveAll(store, repository.Furniture, seedFurniture()))
	require.NoError(t, store.EnsureCollections(repository.Users, repository.Bookings, repository.Payments))

	service := booking.NewBookingService(store)
	router := server.SetupRouter(service, render.NewRenderer(pageTemplates), server.Options{})
	return &testEnv{router: router, store: store, dir: dir}
}

// Get executes a GET request and returns the response recorder.
func (e *testEnv) Get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// PostForm executes a urlencoded POST and returns the response recorder.
func (e *testEnv) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// Users reads the users collection straight from disk
func (e *testEnv) Users(t *testing.T) []model.User {
	t.Helper()
	users, err := repository.LoadAll[model.User](e.store, repository.Users)
	require.NoError(t, err)
	return users
}

// RawFile returns a collection file's bytes
func (e *testEnv) RawFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, name+".json"))
	require.NoError(t, err)
	return data
}

// decode parses a rendered JSON context value
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
