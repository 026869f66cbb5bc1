package recentControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/models"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/recent"
)

const productsJSON = `[
  {"id":7,"title":"Wooden Building Blocks","description":"blocks","price":34.99,"category":"Toys","image":"/blocks.jpg","stockLevel":12},
  {"id":8,"title":"Plush Elephant","description":"elephant","price":16.99,"category":"Toys","image":"/elephant.jpg","stockLevel":4},
  {"id":13,"title":"Bedtime Stories Collection","description":"tales","price":15.99,"category":"Books","image":"/stories.jpg","stockLevel":20}
]`

type memKV struct {
	m map[string]string
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(key string) (string, bool) { v, ok := k.m[key]; return v, ok }
func (k *memKV) Set(key, value string) error   { k.m[key] = value; return nil }
func (k *memKV) Delete(key string) error       { delete(k.m, key); return nil }

func setupRouter(t *testing.T) (*gin.Engine, *recent.Tracker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load([]byte(productsJSON), []byte(`[{"id":1,"name":"Toys"},{"id":2,"name":"Books"}]`))
	require.NoError(t, err)
	tracker := recent.New(newMemKV(), cat)

	r := gin.New()
	r.GET("/recently-viewed", GetRecentlyViewed(tracker))
	r.POST("/recently-viewed/:product_id", TrackProductView(cat, tracker))
	r.DELETE("/recently-viewed", ClearRecentlyViewed(tracker))
	return r, tracker
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listViewed(t *testing.T, r *gin.Engine) []models.Product {
	t.Helper()
	w := do(r, http.MethodGet, "/recently-viewed")
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestTrackAndList(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Empty(t, listViewed(t, r))

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/recently-viewed/7").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/recently-viewed/13").Code)

	got := listViewed(t, r)
	require.Len(t, got, 2)
	assert.Equal(t, 13, got[0].ID) // most recent first
	assert.Equal(t, 7, got[1].ID)
}

func TestTrackErrors(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, http.MethodPost, "/recently-viewed/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/recently-viewed/999")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, listViewed(t, r))
}

func TestClear(t *testing.T) {
	r, tracker := setupRouter(t)
	tracker.TrackView(7)
	tracker.TrackView(8)

	w := do(r, http.MethodDelete, "/recently-viewed")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listViewed(t, r))
}
